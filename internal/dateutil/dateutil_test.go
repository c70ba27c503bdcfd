package dateutil

import (
	"errors"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"empty means today marker", "", `\today`, false},
		{"auto default format", "auto", "2026-03-15", false},
		{"auto custom format", "auto:DD/MM/YYYY", "15/03/2026", false},
		{"auto preset iso", "auto:iso", "2026-03-15", false},
		{"auto preset long", "auto:long", "March 15, 2026", false},
		{"auto preset case-insensitive", "auto:LONG", "March 15, 2026", false},
		{"literal passthrough", "January 2009", "January 2009", false},
		{"latex passthrough", `\today`, `\today`, false},
		{"auto-prefixed words pass through", "autumn term", "autumn term", false},
		{"empty format after auto", "auto:", "", true},
		{"unclosed bracket", "auto:[Date YYYY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.value, fixedNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) err = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDateFormat) {
				t.Fatalf("err = %v, want ErrInvalidDateFormat", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseDateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"iso", "YYYY-MM-DD", "2006-01-02", false},
		{"long month", "MMMM D, YYYY", "January 2, 2006", false},
		{"short year", "YY/M/D", "06/1/2", false},
		{"bracketed literal", "[Date]: YYYY", "Date: 2006", false},
		{"literal characters preserved", "YYYY.MM.DD.", "2006.01.02.", false},
		{"empty", "", "", true},
		{"unclosed bracket", "[oops YYYY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateFormat(%q) err = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
