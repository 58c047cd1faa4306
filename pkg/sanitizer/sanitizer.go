package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func lower(s string) string {
	return strings.ToLower(s)
}

// SanitizeGuestName collapses whitespace in a display name.
func SanitizeGuestName(input string) string {
	return Pipeline{StripControl, CollapseSpaces}.Apply(input)
}

// SanitizeQuery prepares a search term for case-insensitive matching.
func SanitizeQuery(input string) string {
	return Pipeline{StripControl, CollapseSpaces, lower}.Apply(input)
}

// SanitizeID trims an opaque identifier.
func SanitizeID(input string) string {
	return strings.TrimSpace(input)
}
