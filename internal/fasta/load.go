// internal/fasta/load.go
package fasta

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fastachar/internal/alignment"
	"fastachar/internal/fcerr"
)

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// Load reads an aligned FASTA file: every record is a '>' header line
// followed by exactly one data line. All sequences must share one length.
// Any failure aborts the whole load; nothing is returned partially.
func Load(ctx context.Context, path string, hf *HeaderFormat) (*alignment.Alignment, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(ctx, rc, path, hf)
}

// Read is Load on an already opened stream; name is used in error positions.
func Read(ctx context.Context, r io.Reader, name string, hf *HeaderFormat) (*alignment.Alignment, error) {
	if hf == nil {
		hf = DefaultHeaderFormat()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		seqs   []*alignment.Sequence
		lineNo int
		hdr    string
		hdrAt  int
	)
	fail := func(e *fcerr.Error, line int) error { return e.At(name, line) }

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if hdr == "" {
			if line[0] != '>' || len(line) == 1 {
				return nil, fail(fcerr.New(fcerr.FileInvalid, "expected a '>' header line"), lineNo)
			}
			hdr, hdrAt = line, lineNo
			continue
		}
		if line[0] == '>' {
			return nil, fail(fcerr.New(fcerr.FileInvalid, "header without sequence data"), hdrAt)
		}

		id, species, err := hf.Parse(hdr)
		if err != nil {
			return nil, wrapAt(err, name, hdrAt)
		}
		if id == "" {
			id = fmt.Sprintf("ID%03d", len(seqs)+1)
		}
		s, err := alignment.NewSequence(id, species, strings.ToUpper(line))
		if err != nil {
			return nil, wrapAt(err, name, lineNo)
		}
		seqs = append(seqs, s)
		hdr = ""
	}
	if err := sc.Err(); err != nil {
		return nil, &fcerr.Error{Kind: fcerr.IO, Msg: "fasta scan", Path: name, Line: lineNo, Err: err}
	}
	if hdr != "" {
		return nil, fail(fcerr.New(fcerr.FileInvalid, "header without sequence data"), hdrAt)
	}
	if len(seqs) == 0 {
		return nil, fail(fcerr.New(fcerr.FileInvalid, "no sequences found"), 0)
	}
	if !alignment.EqualLengths(seqs) {
		return nil, fail(fcerr.New(fcerr.UnequalSequenceLength, "sequences are not of equal length (%s)", lengthSummary(seqs)), 0)
	}
	return &alignment.Alignment{Sequences: seqs}, nil
}

func wrapAt(err error, path string, line int) error {
	var fe *fcerr.Error
	if errors.As(err, &fe) {
		return fe.At(path, line)
	}
	return err
}

// lengthSummary names the first sequence whose length differs.
func lengthSummary(seqs []*alignment.Sequence) string {
	want := seqs[0].Len()
	for _, s := range seqs[1:] {
		if s.Len() != want {
			return fmt.Sprintf("%s has %d, %s has %d", seqs[0].ID, want, s.ID, s.Len())
		}
	}
	return ""
}
