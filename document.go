package yml2tex

import "strings"

// sectionHeading returns the LaTeX command for a section title.
func sectionHeading(title string) string {
	return "\n\n\\section{" + Escape(title) + "}"
}

// subsectionHeading returns the LaTeX command for a subsection title.
func subsectionHeading(title string) string {
	return "\n\\subsection{" + Escape(title) + "}"
}

// assembler concatenates header, per-level markup and footer into the
// final document. The traversal is the fixed three-level walk in document
// order; a document with zero sections is header plus footer.
type assembler struct {
	header *headerBuilder
	frames *frameRenderer
}

func (a *assembler) render(doc Document) (string, error) {
	var b strings.Builder
	b.WriteString(a.header.render(doc.Metas))
	for _, sec := range doc.Sections {
		b.WriteString(sectionHeading(sec.Title))
		for _, sub := range sec.Subsections {
			b.WriteString(subsectionHeading(sub.Title))
			for _, f := range sub.Frames {
				out, err := a.frames.render(f)
				if err != nil {
					return "", err
				}
				b.WriteString(out)
			}
		}
	}
	b.WriteString(footer())
	return b.String(), nil
}
