// Package languageutil normalizes user entered wardrobe text.
package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label trims, collapses inner whitespace and title cases s, so
// "  ankle   boots" is stored as "Ankle Boots". A Caser keeps state, so
// one is made per call.
func Label(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// LabelPtr is Label for optional fields; blank input becomes nil.
func LabelPtr(s *string) *string {
	if s == nil {
		return nil
	}
	label := Label(*s)
	if label == "" {
		return nil
	}
	return &label
}

// Lower is the lower cased, whitespace collapsed form used for colors.
func Lower(s string) string {
	return cases.Lower(language.English).String(strings.Join(strings.Fields(s), " "))
}
