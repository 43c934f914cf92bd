package blocks

import (
	"strings"
	"unicode"
)

// isSpace matches the characters of the ECMAScript \s class: the Zs
// category, tab, line feed, vertical tab, form feed, carriage return,
// U+FEFF and the line/paragraph separators. U+0085 is not included.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Slug derives an id-safe identifier from label text: trimmed, lowercased,
// whitespace runs collapsed to one hyphen, and anything outside [a-z0-9-]
// dropped. Slug(Slug(s)) == Slug(s).
func Slug(text string) string {
	text = strings.ToLower(strings.TrimFunc(text, isSpace))

	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
