package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s case folded for caseless matching. A Caser keeps state, so a
// fresh one is made per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// HasFragment reports whether folded text contains fragment anywhere.
func HasFragment(text, fragment string) bool {
	return strings.Contains(Fold(text), Fold(fragment))
}
