package screens

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold normalizes text for case-insensitive substring matching.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// matches reports whether any cell contains query after folding.
// An empty query matches everything.
func matches(cells []string, query string) bool {
	if query == "" {
		return true
	}
	q := fold(query)
	for _, c := range cells {
		if strings.Contains(fold(c), q) {
			return true
		}
	}
	return false
}
