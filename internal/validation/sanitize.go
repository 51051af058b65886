package validation

import "strings"

// SanitizeText strips control characters, collapses whitespace and truncates
// to maxLength (with a trailing ellipsis). It never rejects: free-text fields
// like notes and reasons are always accepted once cleaned.
func SanitizeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range text {
		if r >= 32 || r == '\t' || r == '\n' || r == '\r' {
			b.WriteRune(r)
		}
	}

	cleaned := whitespace.ReplaceAllString(strings.TrimSpace(b.String()), " ")

	runes := []rune(cleaned)
	if len(runes) > maxLength {
		cleaned = string(runes[:maxLength-3]) + "..."
	}
	return cleaned
}

// SanitizeNotes cleans phone call notes.
func SanitizeNotes(notes string) string {
	return SanitizeText(notes, 1000)
}
