// internal/writers/results.go
package writers

import (
	"io"

	"fastachar/internal/jsonutil"
	"fastachar/internal/report"
	"fastachar/pkg/api"
)

func drain(ch <-chan *report.Result) []*report.Result {
	list := make([]*report.Result, 0, 8)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// text streams one report block per result
	Register(FormatText, func(w io.Writer, in <-chan *report.Result) error {
		var err error
		for r := range in {
			if err == nil {
				err = report.WriteText(w, r)
			}
		}
		return err
	})

	// JSON array of v1 reports
	Register(FormatJSON, func(w io.Writer, in <-chan *report.Result) error {
		list := drain(in)
		out := make([]api.ReportV1, 0, len(list))
		for _, r := range list {
			out = append(out, report.ToAPI(r))
		}
		return jsonutil.EncodePretty(w, out)
	})

	// JSONL: one v1 column per line
	Register(FormatJSONL, func(w io.Writer, in <-chan *report.Result) error {
		pipe, done := StartColumnJSONLWriter(w, 64)
		for r := range in {
			for _, c := range report.ToAPIColumns(r) {
				pipe <- c
			}
		}
		close(pipe)
		return <-done
	})

	// XLSX needs the whole workbook before it can be written
	Register(FormatXLSX, func(w io.Writer, in <-chan *report.Result) error {
		return report.WriteXLSX(w, drain(in))
	})
}

// StartResultWriter spins up a writer goroutine for format. Send results in
// the order they should appear, close the channel, then read the error.
func StartResultWriter(out io.Writer, format string, bufSize int) (chan<- *report.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan *report.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := Write(format, out, in)
		// keep senders from blocking when the handler bailed early
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
