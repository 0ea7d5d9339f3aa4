// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller asked for
// examples. Apps print them and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart header, body, and a pointer to --help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
