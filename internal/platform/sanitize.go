package platform

import (
	"strings"
	"unicode"
)

// SanitizeFilename keeps letters, digits, space, '.' and '_' and replaces
// every other rune with '_'.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '.' || r == '_' {
			return r
		}
		return '_'
	}, name)
}
