package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: yml2tex <source.yml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transform a YAML outline into a LaTeX Beamer presentation,")
	fmt.Fprintln(w, "written to standard output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -P, --no-pause             Suppress pause/alert commands in lists")
	fmt.Fprintln(w, "  -E, --code-encoding <enc>  Encoding of included code (default UTF-8)")
	fmt.Fprintln(w, "      --no-highlight         Plain listings instead of syntax highlighting")
	fmt.Fprintln(w, "  -V, --version              Print version and exit")
}
