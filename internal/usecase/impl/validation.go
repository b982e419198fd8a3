package impl

import (
	"regexp"
	"strings"
)

var (
	phoneDigitsRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneSeparators  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// isValidPhone accepts an optional leading '+' and 10 to 15 digits, ignoring
// space, hyphen and parenthesis separators.
func isValidPhone(phone string) bool {
	stripped := phoneSeparators.Replace(phone)
	stripped = strings.TrimPrefix(stripped, "+")

	return phoneDigitsRegex.MatchString(stripped)
}

// isValidEmail checks the conventional local@domain.tld shape.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
