// Package texfmt renders chroma token streams as LaTeX.
//
// Output is a fancyvrb Verbatim block whose tokens are wrapped in short
// \YT{<code>}{...} macros. The macros themselves are defined by StyleDefs,
// generated from a chroma style, so the highlighted body is independent of
// the style chosen for the document preamble.
package texfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Formatter writes highlighted LaTeX. It implements chroma.Formatter.
type Formatter struct {
	lineNumbers bool
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLineNumbers enables fancyvrb line numbering.
func WithLineNumbers(enabled bool) Option {
	return func(f *Formatter) {
		f.lineNumbers = enabled
	}
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// verbatimEscaper rewrites the three runes that fancyvrb's commandchars
// option reserves. The replacement macros are defined by StyleDefs.
var verbatimEscaper = strings.NewReplacer(
	`\`, `\YTZbs{}`,
	`{`, `\YTZob{}`,
	`}`, `\YTZcb{}`,
)

// Format writes the token stream as a Verbatim block. The style decides
// nothing here beyond token classification; colors live in the preamble
// macros (see StyleDefs).
func (f *Formatter) Format(w io.Writer, style *chroma.Style, it chroma.Iterator) error {
	opts := `commandchars=\\\{\}`
	if f.lineNumbers {
		opts += ",numbers=left,firstnumber=1,stepnumber=1"
	}
	if _, err := fmt.Fprintf(w, "\\begin{Verbatim}[%s]\n", opts); err != nil {
		return err
	}
	for token := it(); token != chroma.EOF; token = it() {
		if err := writeToken(w, token); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `\end{Verbatim}`)
	return err
}

// writeToken emits one token, splitting at newlines: Verbatim typesets line
// by line, so a wrapping macro must never span a line break.
func writeToken(w io.Writer, token chroma.Token) error {
	short := shortCode(token.Type)
	for i, line := range strings.Split(token.Value, "\n") {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if line == "" {
			continue
		}
		text := verbatimEscaper.Replace(line)
		var err error
		if short == "" {
			_, err = io.WriteString(w, text)
		} else {
			_, err = fmt.Fprintf(w, "\\YT{%s}{%s}", short, text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// shortCode resolves a token type to its standard short name, walking up
// the type hierarchy until one is registered.
func shortCode(tt chroma.TokenType) string {
	for tt != 0 {
		if short, ok := chroma.StandardTypes[tt]; ok {
			return short
		}
		tt = tt.Parent()
	}
	return ""
}
