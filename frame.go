package yml2tex

import (
	"fmt"
	"strings"
)

// frameRenderer turns one loaded frame into its LaTeX block, dispatching
// on the frame kind tagged at load time.
type frameRenderer struct {
	itemize *itemizeRenderer
	code    *codeRenderer
}

func (r *frameRenderer) render(f Frame) (string, error) {
	switch f.Kind {
	case FrameInclude:
		return r.code.frame(f.Path)
	case FrameImage:
		return renderImage(f), nil
	default:
		return r.bullets(f)
	}
}

// bullets renders a plain bullet-list frame with an escaped heading.
func (r *frameRenderer) bullets(f Frame) (string, error) {
	body, err := r.itemize.render(f.Items)
	if err != nil {
		return "", fmt.Errorf("frame %q: %w", f.Title, err)
	}
	var b strings.Builder
	b.WriteString("\n\\begin{frame}[fragile,t]")
	fmt.Fprintf(&b, "\n\t\\frametitle{%s}", Escape(f.Title))
	b.WriteString(body)
	b.WriteString("\n\\end{frame}")
	return b.String(), nil
}

// renderImage emits a shrunk frame wrapping one pgfimage, with display
// options comma-joined in document order.
func renderImage(f Frame) string {
	opts := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, o.Name+"="+o.Value)
	}
	var b strings.Builder
	b.WriteString("\n\\frame[shrink] {")
	fmt.Fprintf(&b, "\n\t\\pgfimage[%s]{%s}", strings.Join(opts, ","), f.Path)
	b.WriteString("\n}")
	return b.String()
}
