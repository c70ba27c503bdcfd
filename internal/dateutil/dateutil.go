// Package dateutil resolves the date metadata of a presentation.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Today is the LaTeX marker for the current date, resolved by the
// typesetter rather than at render time.
const Today = `\today`

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Resolve maps a date metadata value to the string placed in \date{}.
//
//   - ""            → the \today marker
//   - "auto"        → now formatted as YYYY-MM-DD
//   - "auto:FORMAT" → now in a custom format or preset (iso, european,
//     us, long)
//   - anything else → returned unchanged, LaTeX markup included
//
// The now parameter allows injecting a fixed time for testing.
func Resolve(value string, now time.Time) (string, error) {
	if value == "" {
		return Today, nil
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			// Values like "autumn plans" merely start with the letters.
			return value, nil
		}
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(goFmt), nil
}

// ParseDateFormat converts a user-friendly format string to Go's time
// format. Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Bracketed text is
// preserved literally: [Date] keeps "Date" as-is. Any other character
// passes through unchanged.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}
