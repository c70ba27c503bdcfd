package yml2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputRead     = errors.New("failed to read input document")
	ErrEmptyDocument = errors.New("document contains no content")
	ErrDocumentParse = errors.New("failed to parse document")
	ErrDocumentShape = errors.New("document does not match the expected section layout")
	ErrFrameTitle    = errors.New("frame title is missing its path argument")
	ErrFrameContent  = errors.New("frame content does not match the expected shape")
	ErrIncludeRead   = errors.New("failed to read included source file")
	ErrIncludeDecode = errors.New("failed to decode included source file")
)
