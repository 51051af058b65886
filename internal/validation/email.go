package validation

import (
	"regexp"
	"strings"
)

// RFC 5321 upper bound on an address.
const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an optional email address. Empty input is valid
// with an empty canonical value; non-empty input is lower-cased and must
// match a standard local@domain.tld shape.
func ValidateEmail(email string) Result {
	if email == "" {
		return valid("")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if len(email) > maxEmailLength {
		return invalid("Email address too long")
	}
	if !emailPattern.MatchString(email) {
		return invalid("Invalid email format")
	}
	return valid(email)
}
