package yml2tex

import (
	"fmt"
	"os"
	"path/filepath"
)

// Service renders loaded documents to LaTeX Beamer markup. The zero-cost
// way to get one is New; a Service is safe for reuse across documents.
type Service struct {
	cfg         RenderConfig
	highlighter Highlighter
}

// Option configures a Service.
type Option func(*Service)

// WithListPause controls incremental reveal/alert markup on bullets.
// Enabled by default.
func WithListPause(enabled bool) Option {
	return func(s *Service) {
		s.cfg.ListPause = enabled
	}
}

// WithCodeEncoding sets the IANA charset name used to read included
// source files. Default is UTF-8.
func WithCodeEncoding(name string) Option {
	return func(s *Service) {
		s.cfg.CodeEncoding = name
	}
}

// WithBaseDir sets the directory include paths resolve against. By
// default RenderFile uses the input document's directory and Render the
// current directory.
func WithBaseDir(dir string) Option {
	return func(s *Service) {
		s.cfg.BaseDir = dir
	}
}

// WithHighlighter injects the code-rendering backend. Default is the
// chroma backend with line numbers.
func WithHighlighter(h Highlighter) Option {
	return func(s *Service) {
		s.highlighter = h
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{cfg: DefaultRenderConfig()}
	for _, opt := range opts {
		opt(s)
	}
	if s.highlighter == nil {
		s.highlighter = NewChromaHighlighter()
	}
	return s
}

// Render produces the complete LaTeX document for doc. It either returns
// the whole document or an error with nothing usable; there is no partial
// output.
func (s *Service) Render(doc Document) (string, error) {
	return s.renderWith(s.cfg, doc)
}

// RenderFile loads the YAML document at path and renders it. Include
// paths resolve relative to the document's directory unless WithBaseDir
// overrode that.
func (s *Service) RenderFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputRead, err)
	}
	doc, err := Load(data)
	if err != nil {
		return "", err
	}
	cfg := s.cfg
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return s.renderWith(cfg, doc)
}

// renderWith wires the renderer chain for one document. The config is
// copied in, so nothing shared mutates mid-render.
func (s *Service) renderWith(cfg RenderConfig, doc Document) (string, error) {
	code := &codeRenderer{cfg: cfg, highlighter: s.highlighter}
	asm := &assembler{
		header: &headerBuilder{highlighter: s.highlighter},
		frames: &frameRenderer{
			itemize: &itemizeRenderer{cfg: cfg, code: code},
			code:    code,
		},
	}
	return asm.render(doc)
}
