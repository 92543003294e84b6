package selection

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeTitle rewrites an all-caps title as "Sentence case".
// Titles with any lowercase letter, or with no letters at all, are returned as is.
func NormalizeTitle(title string) string {
	if !isShouty(title) {
		return title
	}

	lower := strings.ToLower(title)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToTitle(first)) + lower[size:]
}

func isShouty(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
