package validation

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Injection payloads have no business in a patient name.
	disallowedNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<[^>]+>`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)vbscript:`),
		regexp.MustCompile(`(?i)on\w+=`),
		regexp.MustCompile(`(?i)data:`),
	}

	nameChars  = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	whitespace = regexp.MustCompile(`\s+`)
)

// ValidateName validates and sanitizes a person's name: trims, bounds length
// to [2,100], rejects markup and script-injection patterns, NFKC-normalizes,
// collapses whitespace and word-capitalizes. Only Latin letters plus
// space/hyphen/apostrophe/period are accepted.
func ValidateName(name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("Name is required")
	}

	if len([]rune(name)) < 2 {
		return invalid("Name must be at least 2 characters")
	}
	if len([]rune(name)) > 100 {
		return invalid("Name must be less than 100 characters")
	}

	for _, pattern := range disallowedNamePatterns {
		if pattern.MatchString(name) {
			return invalid("Invalid characters in name")
		}
	}

	name = norm.NFKC.String(name)
	name = whitespace.ReplaceAllString(name, " ")

	if !nameChars.MatchString(name) {
		return invalid("Name contains invalid characters")
	}

	words := strings.Split(name, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return valid(strings.Join(words, " "))
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
