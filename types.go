package yml2tex

// FrameKind discriminates the three built-in frame variants. The kind is
// parsed once from the frame title at load time, so renderers dispatch on
// a proper tag instead of re-parsing title prefixes.
type FrameKind int

const (
	FrameBullets FrameKind = iota // plain bullet-list frame
	FrameInclude                  // full-frame source-code inclusion
	FrameImage                    // image inclusion
)

// Document is a fully loaded presentation: metadata plus sections in
// document order.
type Document struct {
	Metas    Metas
	Sections []Section
}

// Section is one top-level entry of the presentation.
type Section struct {
	Title       string
	Subsections []Subsection
}

// Subsection groups the frames rendered under one subsection heading.
type Subsection struct {
	Title  string
	Frames []Frame
}

// Frame is one slide. Path is set for include and image frames, Options
// for image frames, Items for bullet frames.
type Frame struct {
	Title   string
	Kind    FrameKind
	Path    string
	Options []ImageOption
	Items   []ListItem
}

// ImageOption is one pgfimage display option, kept in document order.
type ImageOption struct {
	Name  string
	Value string
}

// ListItem is one entry of a bullet list. The three implementations are
// TextItem, CodeItem and NestedItem; the set is closed.
type ListItem interface {
	listItem()
}

// TextItem is a plain bullet.
type TextItem string

func (TextItem) listItem() {}

// CodeItem renders a source file inline inside a bullet list.
type CodeItem struct {
	Path string
}

func (CodeItem) listItem() {}

// NestedItem is a labeled sub-list: one bullet carrying the label,
// immediately followed by its children as a nested list.
type NestedItem struct {
	Label string
	Items []ListItem
}

func (NestedItem) listItem() {}

// Metadata defaults, applied whenever the corresponding metas key is absent.
const (
	DefaultTitle          = "Example Presentation"
	DefaultAuthor         = "Arthur Koziel"
	DefaultDate           = `\today`
	DefaultOutlineName    = "Outline"
	DefaultTheme          = "Antibes"
	DefaultColorTheme     = "lily"
	DefaultHighlightStyle = "default"
)

// Metas holds document metadata from the reserved leading "metas" entry.
// Every field is optional in the input; absent keys keep their defaults.
type Metas struct {
	Title          string
	ShortTitle     string
	Author         string
	Institute      string
	Date           string
	Outline        bool
	OutlineName    string
	HighlightStyle string
	Theme          string
	ColorTheme     string
	Babel          string // tex_babel: babel package language option
	FontEnc        string // tex_fontenc: fontenc package option
}

// DefaultMetas returns metadata with all documented defaults applied.
func DefaultMetas() Metas {
	return Metas{
		Title:          DefaultTitle,
		Author:         DefaultAuthor,
		Date:           DefaultDate,
		Outline:        true,
		OutlineName:    DefaultOutlineName,
		HighlightStyle: DefaultHighlightStyle,
		Theme:          DefaultTheme,
		ColorTheme:     DefaultColorTheme,
	}
}

// DefaultCodeEncoding is the charset used to read included source files
// when none is configured.
const DefaultCodeEncoding = "UTF-8"

// RenderConfig is the process-wide rendering configuration. It is set once
// before rendering starts and passed explicitly to every renderer; nothing
// mutates it mid-render.
type RenderConfig struct {
	// ListPause emits incremental reveal/alert markup for bullets.
	ListPause bool
	// CodeEncoding is the IANA charset name used to read included code.
	CodeEncoding string
	// BaseDir resolves relative include paths. Empty means the current
	// directory, or the input document's directory for RenderFile.
	BaseDir string
}

// DefaultRenderConfig returns the configuration used by New before options
// are applied.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ListPause:    true,
		CodeEncoding: DefaultCodeEncoding,
	}
}
