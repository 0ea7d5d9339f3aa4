// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fastachar/internal/report"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatXLSX  = "xlsx"
)

// ResultWriters maps an output format to its handler. Handlers receive the
// results in run order. Register in init() blocks.
var ResultWriters = map[string]func(w io.Writer, in <-chan *report.Result) error{}

// Register is idempotent, last wins.
func Register(format string, fn func(io.Writer, <-chan *report.Result) error) {
	ResultWriters[format] = fn
}

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := ResultWriters[format]
	return ok
}

// Write dispatches to the handler registered for format.
func Write(format string, w io.Writer, in <-chan *report.Result) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in)
}
