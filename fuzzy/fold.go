package fuzzy

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a string for comparison: diacritical marks are removed and
// the result is case-folded. Fold("Côte d’Ivoire") = "cote d’ivoire".
//
// Case folding is not locale-aware.
func Fold(s string) string {
	if isFoldedASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// isFoldedASCII is the fast path for queries typed on a keyboard.
func isFoldedASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// isWordRune is true for letters and digits. Every other character
// separates words.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
