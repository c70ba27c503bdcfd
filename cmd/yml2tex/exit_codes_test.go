package main

import (
	"fmt"
	"testing"

	yml2tex "github.com/tmacam/yml2tex"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"bad flags", ErrBadFlags, ExitUsage},
		{"wrapped bad flags", fmt.Errorf("%w: --bogus", ErrBadFlags), ExitUsage},
		{"include read", yml2tex.ErrIncludeRead, ExitIO},
		{"include decode", yml2tex.ErrIncludeDecode, ExitIO},
		{"missing input", yml2tex.ErrInputRead, ExitGeneral},
		{"empty document", yml2tex.ErrEmptyDocument, ExitGeneral},
		{"frame content", yml2tex.ErrFrameContent, ExitGeneral},
		{"unknown error", fmt.Errorf("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
