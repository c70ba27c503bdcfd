package yml2tex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmacam/yml2tex/internal/encutil"
)

// codeRenderer reads referenced source files and renders them as LaTeX
// code blocks, full-frame or inline. Any read or decode failure is fatal
// for the whole render.
type codeRenderer struct {
	cfg         RenderConfig
	highlighter Highlighter
}

// readSource loads an include file relative to the document directory and
// decodes it with the configured charset.
func (c *codeRenderer) readSource(path string) (string, error) {
	baseDir := c.cfg.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	data, err := os.ReadFile(filepath.Join(baseDir, path)) // #nosec G304 -- include paths come from the user's own document
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIncludeRead, err)
	}
	text, err := encutil.Decode(c.cfg.CodeEncoding, data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrIncludeDecode, path, err)
	}
	return text, nil
}

// block renders the file body through the highlighting backend.
func (c *codeRenderer) block(path string) (string, error) {
	source, err := c.readSource(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := c.highlighter.Highlight(&b, path, source); err != nil {
		return "", err
	}
	return b.String(), nil
}

// frame renders a full code-inclusion frame. The frame must be fragile for
// verbatim content, and the heading embeds the literal filename.
func (c *codeRenderer) frame(path string) (string, error) {
	body, err := c.block(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("\n\\begin{frame}[fragile,t]")
	fmt.Fprintf(&b, "\n\t\\frametitle{Code: \"%s\"}", path)
	b.WriteString(body)
	b.WriteString("\n\\end{frame}")
	return b.String(), nil
}

// inline renders a code block for placement inside a bullet list, padded
// with vertical space instead of a frame.
func (c *codeRenderer) inline(path string) (string, error) {
	body, err := c.block(path)
	if err != nil {
		return "", err
	}
	return "\n\\vspace{0.5em}" + body + "\\vspace{0.5em}", nil
}
