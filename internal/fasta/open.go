// internal/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"fastachar/internal/fcerr"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is STDIN; gzip input is detected by
// magic number or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fcerr.Error{Kind: fcerr.FileNotFound, Msg: "file not found", Path: path}
		}
		return nil, &fcerr.Error{Kind: fcerr.IO, Msg: "open failed", Path: path, Err: err}
	}
	// peek rather than seek so pipes and FIFOs keep their first bytes
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, &fcerr.Error{Kind: fcerr.FileInvalid, Msg: "bad gzip stream", Path: path, Err: err}
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}
