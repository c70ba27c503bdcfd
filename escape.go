package yml2tex

import "strings"

// escapeTable maps each LaTeX-reserved rune to the sequence that produces
// it literally in the output.
var escapeTable = map[rune]string{
	'&': `\&`,
	'$': `\$`,
	'%': `\%`,
	'#': `\#`,
	'_': `\_`,
	'{': `\{`,
	'}': `\}`,
	'[': `\([\)`,
	']': `\(]\)`,
	'<': `\textless `,
	'>': `\textgreater `,
	'|': `\textbar~`,
	'^': `\^{}`,
}

// Escape returns text safe to place verbatim in LaTeX output. It processes
// one rune at a time, so sequences it inserts are never re-escaped the way
// a whole-string replace would. Runes outside the table pass through
// unchanged, non-ASCII included.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := escapeTable[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
