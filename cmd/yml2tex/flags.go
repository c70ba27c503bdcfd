package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	yml2tex "github.com/tmacam/yml2tex"
)

// ErrBadFlags indicates the command line could not be parsed.
var ErrBadFlags = errors.New("invalid command line")

// cliFlags holds the parsed option surface.
type cliFlags struct {
	noPause      bool
	codeEncoding string
	noHighlight  bool
	version      bool
	positional   []string
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &cliFlags{}
	fs.BoolVarP(&f.noPause, "no-pause", "P", false,
		"suppress emission of pause/alert commands in lists")
	fs.StringVarP(&f.codeEncoding, "code-encoding", "E", yml2tex.DefaultCodeEncoding,
		"encoding used by included code")
	fs.BoolVar(&f.noHighlight, "no-highlight", false,
		"render included code as plain listings without syntax highlighting")
	fs.BoolVarP(&f.version, "version", "V", false,
		"print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	f.positional = fs.Args()
	return f, nil
}
