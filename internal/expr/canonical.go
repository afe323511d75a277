package expr

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns the canonical form of expression text: NFC normalized,
// all whitespace removed, and the unicode operator aliases − (minus sign),
// × and ÷ replaced with their ASCII forms.
//
// All parsing and all textual-uniqueness comparisons operate on canonical
// text, so "1 + 1" and "1+1" are the same expression.
func Canonical(text string) string {
	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '−': // U+2212 minus sign
			b.WriteByte('-')
		case r == '×':
			b.WriteByte('*')
		case r == '÷':
			b.WriteByte('/')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
