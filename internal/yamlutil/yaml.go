// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Its ordered decoding is the load-bearing part: section and frame order is
// presentation order, so mappings must come back as key/value pairs in
// insertion order, duplicate keys included. A plain map destination would
// destroy both.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData       = errors.New("yamlutil: nil or empty data")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping    = errors.New("yamlutil: top-level value is not a mapping")
)

// Pair is one entry of an ordered mapping. Value is a string, bool, number,
// nil, []any, or a nested []Pair.
type Pair struct {
	Key   any
	Value any
}

// UnmarshalOrdered decodes data preserving mapping order at every level.
// The top-level value must be a mapping; an empty or comment-only document
// decodes to nil pairs with no error.
func UnmarshalOrdered(data []byte) ([]Pair, error) {
	if len(data) == 0 {
		return nil, ErrNilData
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	var v any
	// AllowDuplicateMapKey: the same frame or section title may appear
	// twice; both occurrences are kept in order.
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if v == nil {
		return nil, nil
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}
	pairs, _ := convert(ms).([]Pair)
	return pairs, nil
}

// convert rewrites goccy's MapSlice values into Pair slices so callers
// never see the library's types.
func convert(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		pairs := make([]Pair, 0, len(t))
		for _, item := range t {
			pairs = append(pairs, Pair{Key: convert(item.Key), Value: convert(item.Value)})
		}
		return pairs
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = convert(e)
		}
		return out
	default:
		return v
	}
}
