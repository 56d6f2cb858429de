package engine

import (
	"strings"
	"unicode"
)

// StripPrefix removes the first prefix text starts with, compared
// case-insensitively, along with the whitespace around it. Prefixes are tried
// in order, so they should be sorted longest first as Config.Validate leaves
// them. Returns the remaining text and the prefix that was removed, if any.
func StripPrefix(text string, prefixes []string) (string, string) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)

	for _, p := range prefixes {
		if p == "" || len(trimmed) < len(p) {
			continue
		}

		if strings.EqualFold(trimmed[:len(p)], p) {
			return strings.TrimLeftFunc(trimmed[len(p):], unicode.IsSpace), p
		}
	}

	return text, ""
}
