package yml2tex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmacam/yml2tex/internal/dateutil"
	"github.com/tmacam/yml2tex/internal/yamlutil"
)

// metasKey is the reserved key of the optional leading metadata entry.
const metasKey = "metas"

// List items carrying this prefix render as inline code instead of a
// bullet. Frame titles use the bare "include"/"image" prefixes.
const includeItemPrefix = "include "

// Load parses an ordered YAML document into a typed Document. Title
// prefixes are resolved into frame and item kinds here, once, so the
// renderers dispatch on tags instead of re-parsing strings. Loading fails
// on an empty document or any content that does not fit the three-level
// section layout; errors carry the offending title and content for
// diagnosis.
func Load(data []byte) (Document, error) {
	pairs, err := yamlutil.UnmarshalOrdered(data)
	if err != nil {
		switch {
		case errors.Is(err, yamlutil.ErrNilData):
			return Document{}, ErrEmptyDocument
		case errors.Is(err, yamlutil.ErrNotMapping):
			return Document{}, fmt.Errorf("%w: %v", ErrDocumentShape, err)
		default:
			return Document{}, fmt.Errorf("%w: %v", ErrDocumentParse, err)
		}
	}
	if len(pairs) == 0 {
		return Document{}, ErrEmptyDocument
	}

	doc := Document{Metas: DefaultMetas()}
	if keyString(pairs[0].Key) == metasKey {
		metas, err := parseMetas(pairs[0].Value)
		if err != nil {
			return Document{}, err
		}
		doc.Metas = metas
		pairs = pairs[1:]
	}

	for _, p := range pairs {
		section, err := parseSection(keyString(p.Key), p.Value)
		if err != nil {
			return Document{}, err
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// parseMetas fills a Metas from the reserved mapping, leaving defaults in
// place for absent keys. Unknown keys are ignored.
func parseMetas(v any) (Metas, error) {
	m := DefaultMetas()
	if v == nil {
		return m, nil
	}
	pairs, ok := v.([]yamlutil.Pair)
	if !ok {
		return m, fmt.Errorf("%w: metas must be a mapping, got %#v", ErrDocumentShape, v)
	}
	for _, p := range pairs {
		switch keyString(p.Key) {
		case "title":
			m.Title = valString(p.Value)
		case "short_title":
			m.ShortTitle = valString(p.Value)
		case "author":
			m.Author = valString(p.Value)
		case "institute":
			m.Institute = valString(p.Value)
		case "date":
			date, err := dateutil.Resolve(valString(p.Value), time.Now())
			if err != nil {
				return m, fmt.Errorf("%w: date: %v", ErrDocumentShape, err)
			}
			m.Date = date
		case "outline":
			m.Outline = boolValue(p.Value, true)
		case "outline_name":
			m.OutlineName = valString(p.Value)
		case "highlight_style":
			m.HighlightStyle = valString(p.Value)
		case "theme":
			m.Theme = valString(p.Value)
		case "color_theme":
			m.ColorTheme = valString(p.Value)
		case "tex_babel":
			m.Babel = valString(p.Value)
		case "tex_fontenc":
			m.FontEnc = valString(p.Value)
		}
	}
	return m, nil
}

func parseSection(title string, v any) (Section, error) {
	section := Section{Title: title}
	if v == nil {
		return section, nil
	}
	pairs, ok := v.([]yamlutil.Pair)
	if !ok {
		return section, fmt.Errorf("%w: section %q must map subsection titles to frames, got %#v",
			ErrDocumentShape, title, v)
	}
	for _, p := range pairs {
		sub, err := parseSubsection(keyString(p.Key), p.Value)
		if err != nil {
			return section, err
		}
		section.Subsections = append(section.Subsections, sub)
	}
	return section, nil
}

func parseSubsection(title string, v any) (Subsection, error) {
	sub := Subsection{Title: title}
	if v == nil {
		return sub, nil
	}
	pairs, ok := v.([]yamlutil.Pair)
	if !ok {
		return sub, fmt.Errorf("%w: subsection %q must map frame titles to content, got %#v",
			ErrDocumentShape, title, v)
	}
	for _, p := range pairs {
		frame, err := parseFrame(keyString(p.Key), p.Value)
		if err != nil {
			return sub, err
		}
		sub.Frames = append(sub.Frames, frame)
	}
	return sub, nil
}

// parseFrame tags a (title, content) pair as one of the three frame
// variants. The title prefix is the sole discriminant.
func parseFrame(title string, content any) (Frame, error) {
	frame := Frame{Title: title}
	switch {
	case strings.HasPrefix(title, "include"):
		frame.Kind = FrameInclude
		path, err := titlePath(title)
		if err != nil {
			return frame, err
		}
		frame.Path = path
		// Any content under an include title is ignored; the title
		// carries everything the renderer needs.

	case strings.HasPrefix(title, "image"):
		frame.Kind = FrameImage
		path, err := titlePath(title)
		if err != nil {
			return frame, err
		}
		frame.Path = path
		options, err := parseImageOptions(title, content)
		if err != nil {
			return frame, err
		}
		frame.Options = options

	default:
		frame.Kind = FrameBullets
		items, err := parseItems(content)
		if err != nil {
			return frame, fmt.Errorf("frame %q: %w", title, err)
		}
		frame.Items = items
	}
	return frame, nil
}

// titlePath extracts the path token from an "include <path>" or
// "image <path>" title.
func titlePath(title string) (string, error) {
	fields := strings.Fields(title)
	if len(fields) < 2 {
		return "", fmt.Errorf("%w: %q", ErrFrameTitle, title)
	}
	return fields[1], nil
}

func parseImageOptions(title string, content any) ([]ImageOption, error) {
	if content == nil {
		return nil, nil
	}
	pairs, ok := content.([]yamlutil.Pair)
	if !ok {
		return nil, fmt.Errorf("%w: frame %q: image options must be a mapping, got %#v",
			ErrFrameContent, title, content)
	}
	options := make([]ImageOption, 0, len(pairs))
	for _, p := range pairs {
		options = append(options, ImageOption{Name: keyString(p.Key), Value: valString(p.Value)})
	}
	return options, nil
}

func parseItems(content any) ([]ListItem, error) {
	seq, ok := content.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of items, got %#v", ErrFrameContent, content)
	}
	items := make([]ListItem, 0, len(seq))
	for _, raw := range seq {
		item, err := parseItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseItem resolves one list entry. Nested sub-lists arrive in one of
// two equivalent wrappings, both one level deep around a single
// (label, children) pair:
//
//	- Parent:        # mapping form
//	    - Child
//	- [[Parent, [Child]]]   # sequence form
//
// Decks authored for the original tool depend on this exact shape, so it
// is preserved verbatim. A wrapper carrying more than one pair is
// rejected: its intent is ambiguous.
func parseItem(raw any) (ListItem, error) {
	switch t := raw.(type) {
	case string:
		if strings.HasPrefix(t, includeItemPrefix) {
			path, err := titlePath(t)
			if err != nil {
				return nil, err
			}
			return CodeItem{Path: path}, nil
		}
		return TextItem(t), nil

	case []yamlutil.Pair:
		if len(t) != 1 {
			return nil, fmt.Errorf("%w: nested item carries %d label pairs, want exactly 1: %#v",
				ErrFrameContent, len(t), t)
		}
		return nestedItem(keyString(t[0].Key), t[0].Value)

	case []any:
		if len(t) == 1 {
			if pair, ok := t[0].([]any); ok && len(pair) == 2 {
				return nestedItem(valString(pair[0]), pair[1])
			}
		}
		return nil, fmt.Errorf("%w: nested item must wrap a single [label, children] pair, got %#v",
			ErrFrameContent, t)

	case nil:
		return nil, fmt.Errorf("%w: empty list item", ErrFrameContent)

	default:
		// Scalar YAML values (numbers, booleans) become plain bullets.
		return TextItem(valString(t)), nil
	}
}

func nestedItem(label string, children any) (ListItem, error) {
	items, err := parseItems(children)
	if err != nil {
		return nil, fmt.Errorf("nested item %q: %w", label, err)
	}
	return NestedItem{Label: label, Items: items}, nil
}

// keyString renders a mapping key as the title string it stands for.
func keyString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// valString renders a scalar value, mapping nil to the empty string.
func valString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func boolValue(v any, def bool) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(t); err == nil {
			return b
		}
	}
	return def
}
