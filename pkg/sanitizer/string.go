package sanitizer

import (
	"strings"
	"unicode"
)

// CollapseSpaces trims s and folds every run of whitespace, tabs and
// newlines included, into a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl drops non-printable runes such as zero-width joiners that
// sneak in from pasted contact cards.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return r
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}
