package util

import (
	"unicode/utf8"
)

// TruncateUTF8 cuts s to at most maxBytes bytes without leaving a partial
// UTF-8 sequence at the cut point. Input that is not UTF-8 is cut at exactly
// maxBytes.
func TruncateUTF8(s string, maxBytes int) string {
	switch {
	case len(s) <= maxBytes:
		return s
	case maxBytes <= 0:
		return ""
	}

	// back off over continuation bytes of a rune that would be split;
	// a rune is at most utf8.UTFMax bytes so anything further back is not UTF-8
	cut := maxBytes
	for cut > 0 && cut > maxBytes-utf8.UTFMax && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if !utf8.RuneStart(s[cut]) {
		return s[:maxBytes]
	}
	return s[:cut]
}
