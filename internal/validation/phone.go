package validation

import (
	"regexp"
	"strings"
)

var (
	mobilePrefixes   = []string{"67", "68", "69"}
	landlinePrefixes = []string{"2", "3", "4"}

	nonPhoneChars = regexp.MustCompile(`[^\d+]`)
)

// ValidatePhone validates an Albanian phone number and normalizes it to the
// canonical +355 form. Mobile numbers are 9 digits starting 67/68/69,
// landlines 8 digits starting 2/3/4. Input may carry a +355 or 355 country
// code, a local leading zero, spaces or punctuation.
func ValidatePhone(phone string) Result {
	if strings.TrimSpace(phone) == "" {
		return invalid("Phone number is required")
	}

	cleaned := nonPhoneChars.ReplaceAllString(strings.TrimSpace(phone), "")

	if strings.HasPrefix(cleaned, "+") {
		if !strings.HasPrefix(cleaned, "+355") {
			return invalid("Only Albanian phone numbers are supported")
		}
		cleaned = cleaned[1:]
	}
	cleaned = strings.TrimPrefix(cleaned, "355")

	if cleaned == "" {
		return invalid("Invalid Albanian phone number format")
	}

	// Local convention writes a leading zero before the subscriber number.
	if strings.HasPrefix(cleaned, "0") && (len(cleaned) == 9 || len(cleaned) == 10) {
		cleaned = cleaned[1:]
	}

	if len(cleaned) < 8 || len(cleaned) > 9 {
		return invalid("Invalid phone number length")
	}

	if len(cleaned) == 9 && hasAnyPrefix(cleaned, mobilePrefixes) {
		return valid("+355" + cleaned)
	}
	if len(cleaned) == 8 && hasAnyPrefix(cleaned, landlinePrefixes) {
		return valid("+355" + cleaned)
	}

	return invalid("Invalid Albanian phone number format")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
