package main

import (
	"fmt"
	"io"

	yml2tex "github.com/tmacam/yml2tex"
)

// run parses arguments, renders the document, and writes it to stdout.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Fprintf(stdout, "yml2tex %s\n", Version)
		return ExitSuccess
	}

	if len(flags.positional) == 0 {
		printUsage(stderr)
		return ExitGeneral
	}

	opts := []yml2tex.Option{
		yml2tex.WithListPause(!flags.noPause),
		yml2tex.WithCodeEncoding(flags.codeEncoding),
	}
	if flags.noHighlight {
		opts = append(opts, yml2tex.WithHighlighter(yml2tex.ListingsHighlighter{}))
	}

	svc := yml2tex.New(opts...)
	out, err := svc.RenderFile(flags.positional[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	fmt.Fprintln(stdout, out)
	return ExitSuccess
}
