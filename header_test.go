package yml2tex

import (
	"strings"
	"testing"
)

func TestHeaderDefaults(t *testing.T) {
	h := &headerBuilder{highlighter: ListingsHighlighter{}}
	got := h.render(DefaultMetas())

	wantParts := []string{
		"\\documentclass[slidestop,red]{beamer}",
		"\\usepackage[utf8]{inputenc}",
		"\\usepackage{fancyvrb,color}",
		"\\usepackage{listings}",
		"\\usetheme{Antibes}",
		"\\usecolortheme{lily}",
		"\\setbeamertemplate{footline}[frame number]",
		"\\title{Example Presentation}",
		"\\author{Arthur Koziel}",
		"\\institute{}",
		"\\date{\\today}",
		"\\begin{document}",
		"\\frame{\\titlepage}",
		"\\section*{Outline}",
		"\\tableofcontents",
		"\\AtBeginSection[]",
		"\\tableofcontents[currentsection]",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("preamble missing %q", part)
		}
	}

	if !strings.HasPrefix(got, "\\documentclass") {
		t.Errorf("preamble must start with the documentclass, got %q", got[:40])
	}
	if strings.Contains(got, "babel") || strings.Contains(got, "fontenc") {
		t.Errorf("babel/fontenc emitted without metadata: %q", got)
	}
}

func TestHeaderMetadata(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Metas)
		want       []string
		wantAbsent []string
	}{
		{
			name:   "short title bracket",
			mutate: func(m *Metas) { m.ShortTitle = "Go"; m.Title = "Go in Depth" },
			want:   []string{"\\title[Go]{Go in Depth}"},
		},
		{
			name:   "babel and fontenc",
			mutate: func(m *Metas) { m.Babel = "german"; m.FontEnc = "T1" },
			want:   []string{"\\usepackage[german]{babel}", "\\usepackage[T1]{fontenc}"},
		},
		{
			name:       "outline suppressed",
			mutate:     func(m *Metas) { m.Outline = false },
			wantAbsent: []string{"\\tableofcontents", "\\AtBeginSection"},
		},
		{
			name:   "custom outline name",
			mutate: func(m *Metas) { m.OutlineName = "Agenda" },
			want:   []string{"\\section*{Agenda}", "\\frametitle{Agenda}"},
		},
		{
			name:   "configurable theme",
			mutate: func(m *Metas) { m.Theme = "Warsaw"; m.ColorTheme = "orchid" },
			want:   []string{"\\usetheme{Warsaw}", "\\usecolortheme{orchid}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMetas()
			tt.mutate(&m)
			h := &headerBuilder{highlighter: ListingsHighlighter{}}
			got := h.render(m)
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("preamble missing %q", part)
				}
			}
			for _, part := range tt.wantAbsent {
				if strings.Contains(got, part) {
					t.Errorf("preamble should not contain %q", part)
				}
			}
		})
	}
}

func TestHeaderChromaStyleDefs(t *testing.T) {
	h := &headerBuilder{highlighter: NewChromaHighlighter()}
	got := h.render(DefaultMetas())

	if !strings.Contains(got, "\\makeatletter") {
		t.Errorf("chroma style definitions missing from preamble")
	}
	if strings.Contains(got, "\\usepackage{listings}") {
		t.Errorf("listings fallback emitted alongside chroma defs")
	}
}

func TestFooter(t *testing.T) {
	if got := footer(); got != "\n\\end{document}" {
		t.Errorf("footer() = %q", got)
	}
}
