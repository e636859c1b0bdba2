// Package transform holds small pure-text editor transforms: typographic
// quote conversion and wiki-link normalization. Like the title-case
// engine, every function here maps a string to a string with no I/O and
// no shared state.
package transform

import (
	"strings"
	"unicode"
)

const (
	leftDouble  = '“'
	rightDouble = '”'
	leftSingle  = '‘'
	rightSingle = '’'
)

// SmartQuotes converts straight quotes to typographic quotes. A double
// quote opens after whitespace, an opening bracket, or the start of the
// text, and closes otherwise. A single quote between letters, or after a
// letter or digit, is an apostrophe; otherwise it follows the same
// open/close logic. Text inside backtick code spans is left untouched.
func SmartQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inCode := false
	prev := rune(0)
	runes := []rune(text)

	for i, r := range runes {
		switch {
		case r == '`':
			inCode = !inCode
			b.WriteRune(r)
		case inCode:
			b.WriteRune(r)
		case r == '"':
			if opensQuote(prev) {
				b.WriteRune(leftDouble)
			} else {
				b.WriteRune(rightDouble)
			}
		case r == '\'':
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			switch {
			case unicode.IsLetter(prev) || unicode.IsDigit(prev):
				b.WriteRune(rightSingle) // apostrophe or closing
			case opensQuote(prev) && unicode.IsLetter(next):
				b.WriteRune(leftSingle)
			default:
				b.WriteRune(rightSingle)
			}
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	return b.String()
}

// StraightQuotes is the inverse direction: typographic quotes back to
// straight ASCII quotes.
func StraightQuotes(text string) string {
	return strings.NewReplacer(
		string(leftDouble), `"`,
		string(rightDouble), `"`,
		string(leftSingle), `'`,
		string(rightSingle), `'`,
	).Replace(text)
}

// opensQuote reports whether a quote following r starts quoted text.
func opensQuote(r rune) bool {
	if r == 0 || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', '[', '{', '—', '–', '-':
		return true
	}
	return false
}
