// internal/caseio/caseio.go
package caseio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"fastachar/internal/fcerr"
)

// Keys in the order Write emits them.
const (
	KeyFilename          = "filename"
	KeySpecies           = "species"
	KeySetA              = "setA"
	KeySetB              = "setB"
	KeyOperation         = "operation"
	KeyRegexHeaderFormat = "regex_header_format"
	KeyRegexID           = "regex_id"
	KeyRegexSpecies      = "regex_species"
)

// Case is the saved state of one comparison: the input file, the species of
// lists A and B, the operation and the header-parsing regexes.
type Case struct {
	Filename     string
	Species      []string
	SetA         []string
	SetB         []string
	Operation    string
	HeaderFormat string
	IDRegex      string
	SpeciesRegex string
}

// Load reads a case file. A missing file is FileNotFound; a file that sets
// no keys at all is NoCaseData.
func Load(path string) (*Case, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fcerr.Error{Kind: fcerr.FileNotFound, Msg: "case file not found", Path: path}
		}
		return nil, &fcerr.Error{Kind: fcerr.IO, Msg: "open case file", Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	c, err := Read(fh)
	if err != nil {
		var fe *fcerr.Error
		if errors.As(err, &fe) {
			return nil, fe.At(path, 0)
		}
		return nil, err
	}
	return c, nil
}

// Read parses "key = value" lines. List keys are split on ',', trimmed and
// sorted. Blank lines and '#' comments are skipped; unknown keys are ignored.
func Read(r io.Reader) (*Case, error) {
	var c Case
	seen := 0
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		kwd, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &fcerr.Error{Kind: fcerr.Case, Msg: fmt.Sprintf("malformed line %q", line), Line: ln}
		}
		kwd, value = strings.TrimSpace(kwd), strings.TrimSpace(value)
		switch kwd {
		case KeyFilename:
			c.Filename = value
		case KeySpecies:
			c.Species = splitList(value)
		case KeySetA:
			c.SetA = splitList(value)
		case KeySetB:
			c.SetB = splitList(value)
		case KeyOperation:
			c.Operation = value
		case KeyRegexHeaderFormat:
			c.HeaderFormat = value
		case KeyRegexID:
			c.IDRegex = value
		case KeyRegexSpecies:
			c.SpeciesRegex = value
		default:
			continue
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, &fcerr.Error{Kind: fcerr.IO, Msg: "read case file", Line: ln, Err: err}
	}
	if seen == 0 {
		return nil, fcerr.New(fcerr.NoCaseData, "no case data")
	}
	return &c, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Write emits every key in a fixed order; lists are joined with " , ".
func (c *Case) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	kv := []struct{ k, v string }{
		{KeyFilename, c.Filename},
		{KeySpecies, strings.Join(c.Species, " , ")},
		{KeySetA, strings.Join(c.SetA, " , ")},
		{KeySetB, strings.Join(c.SetB, " , ")},
		{KeyOperation, c.Operation},
		{KeyRegexHeaderFormat, c.HeaderFormat},
		{KeyRegexID, c.IDRegex},
		{KeyRegexSpecies, c.SpeciesRegex},
	}
	for _, e := range kv {
		if _, err := fmt.Fprintf(bw, "%s = %s\n", e.k, e.v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the case to path, replacing any existing file.
func (c *Case) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return &fcerr.Error{Kind: fcerr.IO, Msg: "could not save case file", Path: path, Err: err}
	}
	if err := c.Write(fh); err != nil {
		_ = fh.Close()
		return &fcerr.Error{Kind: fcerr.IO, Msg: "could not save case file", Path: path, Err: err}
	}
	return fh.Close()
}

// Check reports NoCaseData when the case cannot drive a run: no input file
// or an empty list A.
func (c *Case) Check() error {
	switch {
	case c.Filename == "":
		return fcerr.New(fcerr.NoCaseData, "case names no %s", KeyFilename)
	case len(c.SetA) == 0:
		return fcerr.New(fcerr.NoCaseData, "case has an empty %s", KeySetA)
	}
	return nil
}
