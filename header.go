package yml2tex

import (
	"fmt"
	"strings"
)

// headerBuilder renders the document preamble: encoding and package
// declarations, highlight style setup, theme, title matter, the title
// frame and the optional outline frames. Every metadata field has a
// default, so any Metas value yields a complete preamble.
type headerBuilder struct {
	highlighter Highlighter
}

func (h *headerBuilder) render(m Metas) string {
	var b strings.Builder
	b.WriteString("\\documentclass[slidestop,red]{beamer}")
	b.WriteString("\n\\usepackage[utf8]{inputenc}")
	if m.Babel != "" {
		fmt.Fprintf(&b, "\n\\usepackage[%s]{babel}", m.Babel)
	}
	if m.FontEnc != "" {
		fmt.Fprintf(&b, "\n\\usepackage[%s]{fontenc}", m.FontEnc)
	}
	b.WriteString("\n\\usepackage{fancyvrb,color}\n\n")

	b.WriteString(h.highlighter.StyleDefs(m.HighlightStyle))

	fmt.Fprintf(&b, "\n\n\\usetheme{%s}", m.Theme)
	b.WriteString("\n\\setbeamertemplate{footline}[frame number]")
	fmt.Fprintf(&b, "\n\\usecolortheme{%s}", m.ColorTheme)
	b.WriteString("\n\\beamertemplateshadingbackground{blue!5}{yellow!10}")

	shortTitle := ""
	if m.ShortTitle != "" {
		shortTitle = "[" + m.ShortTitle + "]"
	}
	fmt.Fprintf(&b, "\n\n\\title%s{%s}", shortTitle, m.Title)
	fmt.Fprintf(&b, "\n\\author{%s}", m.Author)
	fmt.Fprintf(&b, "\n\\institute{%s}", m.Institute)
	fmt.Fprintf(&b, "\n\\date{%s}", m.Date)

	b.WriteString("\n\n\\begin{document}")
	b.WriteString("\n\n\\frame{\\titlepage}")

	if m.Outline {
		// A starred section keeps the outline itself out of the table of
		// contents, and AtBeginSection repeats it before every section.
		fmt.Fprintf(&b, "\n\n\\section*{%s}", m.OutlineName)
		b.WriteString("\n\\frame {")
		fmt.Fprintf(&b, "\n\t\\frametitle{%s}", m.OutlineName)
		b.WriteString("\n\t\\tableofcontents")
		b.WriteString("\n}")

		b.WriteString("\n\n\\AtBeginSection[] {")
		b.WriteString("\n\t\\frame{")
		fmt.Fprintf(&b, "\n\t\t\\frametitle{%s}", m.OutlineName)
		b.WriteString("\n\t\t\\tableofcontents[currentsection]")
		b.WriteString("\n\t}")
		b.WriteString("\n}")
	}
	return b.String()
}

// footer closes the document body.
func footer() string {
	return "\n\\end{document}"
}
