package yml2tex

import (
	"fmt"
	"strings"
)

// itemizeRenderer renders bullet lists, recursing on nested items. The
// engine places no bound on depth; Beamer itself tops out at three levels,
// which is the typesetter's concern, not ours.
type itemizeRenderer struct {
	cfg  RenderConfig
	code *codeRenderer
}

// render emits one itemize block for items, in order. An empty slice
// yields an empty but well-formed block.
func (r *itemizeRenderer) render(items []ListItem) (string, error) {
	var b strings.Builder
	b.WriteString("\n\t\\begin{itemize}")
	if r.cfg.ListPause {
		b.WriteString("[<+-| alert@+>]")
	}
	for _, item := range items {
		switch it := item.(type) {
		case TextItem:
			fmt.Fprintf(&b, "\n\t\\item %s", Escape(string(it)))
		case CodeItem:
			inline, err := r.code.inline(it.Path)
			if err != nil {
				return "", err
			}
			b.WriteString(inline)
		case NestedItem:
			// The label is the visible bullet; the children follow as a
			// sub-list introduced under that same bullet.
			fmt.Fprintf(&b, "\n\t\\item %s", Escape(it.Label))
			sub, err := r.render(it.Items)
			if err != nil {
				return "", err
			}
			b.WriteString(sub)
		default:
			return "", fmt.Errorf("%w: unsupported list item %T", ErrFrameContent, item)
		}
	}
	b.WriteString("\n\t\\end{itemize}")
	return b.String(), nil
}
