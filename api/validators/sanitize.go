package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeString trims surrounding whitespace, drops control characters, and
// clamps the result to at most maxLen bytes (0 disables the clamp), never
// splitting a multi-byte rune. Used for free-text query parameters before
// they reach a LIKE filter.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))

	if maxLen <= 0 || len(cleaned) <= maxLen {
		return cleaned
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
		cut--
	}
	return cleaned[:cut]
}
