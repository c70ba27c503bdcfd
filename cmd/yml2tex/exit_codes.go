package main

import (
	"errors"

	yml2tex "github.com/tmacam/yml2tex"
)

// Exit codes for the yml2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage. Missing and
// empty input exit 1, matching the original tool's contract.
const (
	ExitSuccess = 0 // Document rendered to stdout
	ExitGeneral = 1 // Missing/empty/malformed input, render failure
	ExitUsage   = 2 // Invalid flags
	ExitIO      = 3 // Include file unreadable or undecodable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrBadFlags) {
		return ExitUsage
	}

	if errors.Is(err, yml2tex.ErrIncludeRead) ||
		errors.Is(err, yml2tex.ErrIncludeDecode) {
		return ExitIO
	}

	return ExitGeneral
}
