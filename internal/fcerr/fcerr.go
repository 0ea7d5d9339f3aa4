// internal/fcerr/fcerr.go
package fcerr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the loader, case reader and comparator can report.
type Kind int

const (
	Unknown Kind = iota
	InvalidCharacter
	UnequalSequenceLength
	InvalidMethod
	EmptyInputSet
	FileNotFound
	FileInvalid
	InvalidHeader
	InvalidSelection
	IO
	NoCaseData
	Case
)

var kindNames = map[Kind]string{
	Unknown:               "unknown",
	InvalidCharacter:      "invalid-character",
	UnequalSequenceLength: "unequal-sequence-length",
	InvalidMethod:         "invalid-method",
	EmptyInputSet:         "empty-input-set",
	FileNotFound:          "file-not-found",
	FileInvalid:           "file-invalid",
	InvalidHeader:         "invalid-header",
	InvalidSelection:      "invalid-selection",
	IO:                    "io",
	NoCaseData:            "no-case-data",
	Case:                  "case",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error lets a bare Kind be used as an errors.Is target.
func (k Kind) Error() string { return k.String() }

// Error is the structured (code, message) pair surfaced at the load boundary.
// Line is 1-based and zero when not applicable.
type Error struct {
	Kind Kind
	Msg  string
	Path string
	Line int
	Err  error
}

func New(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches a cause; the cause stays reachable through errors.Unwrap.
func Wrap(k Kind, err error, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind or a bare Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// At returns a copy of e positioned at path:line.
func (e *Error) At(path string, line int) *Error {
	c := *e
	if path != "" {
		c.Path = path
	}
	if line > 0 {
		c.Line = line
	}
	return &c
}

// KindOf reports the Kind carried by err, or Unknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return Unknown
}
