// Package encutil decodes byte content by IANA charset name.
// It wraps golang.org/x/text so callers never touch the encoding registry
// directly.
package encutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// Sentinel errors for decode operations.
var (
	ErrUnknownEncoding = errors.New("encutil: unknown encoding name")
	ErrInvalidEncoding = errors.New("encutil: content is not valid in the declared encoding")
)

// Decode converts data from the named charset to a UTF-8 string.
//
// UTF-8 input is validated strictly: x/text decoders substitute U+FFFD for
// invalid bytes instead of failing, which would silently corrupt included
// code, so the UTF-8 path checks validity itself.
func Decode(name string, data []byte) (string, error) {
	if isUTF8(name) {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
		}
		return string(data), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, name, err)
	}
	return string(decoded), nil
}

// isUTF8 matches the common spellings of UTF-8.
func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
