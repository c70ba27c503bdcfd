package texfmt

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// StyleDefs renders the preamble macro definitions for a chroma style.
// One \YT@tok@<code> macro is defined per styled token type; \YT itself
// dispatches on the short code, and undefined codes degrade to plain text.
func StyleDefs(style *chroma.Style) string {
	var b strings.Builder
	b.WriteString("\\makeatletter\n")
	b.WriteString("\\def\\YT#1#2{\\csname YT@tok@#1\\endcsname{#2}}\n")
	for _, tt := range style.Types() {
		short := shortCode(tt)
		if short == "" {
			continue
		}
		body := entryCommand(style.Get(tt))
		if body == "#1" {
			continue
		}
		fmt.Fprintf(&b, "\\expandafter\\def\\csname YT@tok@%s\\endcsname#1{%s}\n", short, body)
	}
	b.WriteString("\\def\\YTZbs{\\char`\\\\}\n")
	b.WriteString("\\def\\YTZob{\\char`\\{}\n")
	b.WriteString("\\def\\YTZcb{\\char`\\}}\n")
	b.WriteString("\\makeatother\n")
	return b.String()
}

// entryCommand wraps "#1" in the LaTeX commands a style entry calls for.
// Colors use the rgb model so the plain color package suffices.
func entryCommand(entry chroma.StyleEntry) string {
	body := "#1"
	if entry.Underline == chroma.Yes {
		body = "\\underline{" + body + "}"
	}
	if entry.Italic == chroma.Yes {
		body = "\\textit{" + body + "}"
	}
	if entry.Bold == chroma.Yes {
		body = "\\textbf{" + body + "}"
	}
	if entry.Colour.IsSet() {
		body = fmt.Sprintf("\\textcolor[rgb]{%.2f,%.2f,%.2f}{%s}",
			float64(entry.Colour.Red())/255,
			float64(entry.Colour.Green())/255,
			float64(entry.Colour.Blue())/255,
			body)
	}
	return body
}
