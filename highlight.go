package yml2tex

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/tmacam/yml2tex/internal/texfmt"
)

// Highlighter renders included source code as LaTeX and supplies the
// preamble definitions that rendered code depends on. Implementations are
// selected once at startup; rendering code never checks which one it got.
type Highlighter interface {
	// Highlight writes the LaTeX block for source, ready to drop inside a
	// fragile frame. The filename selects the language.
	Highlight(w io.Writer, filename, source string) error
	// StyleDefs returns the preamble setup for the named highlight style.
	StyleDefs(styleName string) string
}

// ChromaHighlighter colorizes code with chroma, picking a lexer by
// filename and falling back to plain text when none matches.
type ChromaHighlighter struct {
	formatter *texfmt.Formatter
}

// NewChromaHighlighter creates the default highlighting backend with line
// numbers enabled.
func NewChromaHighlighter() *ChromaHighlighter {
	return &ChromaHighlighter{
		formatter: texfmt.New(texfmt.WithLineNumbers(true)),
	}
}

func (h *ChromaHighlighter) Highlight(w io.Writer, filename, source string) error {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", filename, err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := h.formatter.Format(w, styles.Fallback, it); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// StyleDefs generates token color macros from the named chroma style.
// Unknown names fall back to chroma's default style.
func (h *ChromaHighlighter) StyleDefs(styleName string) string {
	return texfmt.StyleDefs(styles.Get(styleName))
}

// ListingsHighlighter is the plain verbatim backend: code goes into an
// undecorated lstlisting block. Selected with --no-highlight.
type ListingsHighlighter struct{}

func (ListingsHighlighter) Highlight(w io.Writer, _, source string) error {
	_, err := fmt.Fprintf(w, "\n\t\\begin{lstlisting}\n%s\n\t\\end{lstlisting}", source)
	return err
}

func (ListingsHighlighter) StyleDefs(string) string {
	return "\\usepackage{listings}\n\\lstset{numbers=left}"
}
