// Package yml2tex converts ordered YAML outlines into LaTeX Beamer
// presentations.
//
// # Quick Start
//
// Create a service and render a document file:
//
//	svc := yml2tex.New()
//	tex, err := svc.RenderFile("slides.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(tex)
//
// The input is a three-level ordered mapping: sections, subsections, and
// frames. Each frame is either a bullet list, a source-code inclusion
// (title "include <path>"), or an image (title "image <path>"). An optional
// leading "metas" entry supplies document metadata such as title, author
// and theme.
//
// # Rendering Pipeline
//
// Rendering follows these stages:
//
//  1. Ordered loading (goccy/go-yaml, insertion order and duplicate keys
//     preserved)
//  2. Title-prefix dispatch into typed frames and list items
//  3. Preamble generation from metadata with documented defaults
//  4. Recursive frame and nested-list rendering with LaTeX escaping
//  5. Syntax highlighting of included code via chroma, or a plain
//     lstlisting fallback
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := yml2tex.New(
//	    yml2tex.WithListPause(false),
//	    yml2tex.WithCodeEncoding("ISO-8859-1"),
//	    yml2tex.WithHighlighter(yml2tex.ListingsHighlighter{}),
//	)
//
// Rendering is a one-shot batch transform: any failure (unreadable input,
// missing include file, malformed frame content) aborts the whole render
// and no partial document is produced.
package yml2tex
