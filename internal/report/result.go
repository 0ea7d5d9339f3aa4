// internal/report/result.go
package report

import (
	"fastachar/internal/alignment"
	"fastachar/internal/compare"
	"fastachar/internal/fcerr"
)

// Result is one computed run, ready for any renderer.
type Result struct {
	Filename  string
	Case      string // case file the run came from, if any
	Operation Operation
	SetA      []*alignment.Sequence
	SetB      []*alignment.Sequence
	Length    int // alignment width

	MDCs      []compare.Diagnostic // mdc, potential
	Columns   []compare.Column     // diff, agree
	NonUnique []compare.NonUnique  // nucs
}

// Compute runs op over the two lists. Cross-list operations need both lists
// non-empty; the within-list ones only list A.
func Compute(filename string, op Operation, setA, setB []*alignment.Sequence) (*Result, error) {
	if len(setA) == 0 {
		return nil, fcerr.New(fcerr.EmptyInputSet, "list A is empty")
	}
	r := &Result{
		Filename:  filename,
		Operation: op,
		SetA:      setA,
		SetB:      setB,
		Length:    setA[0].Len(),
	}
	if m, ok := op.Method(); ok {
		if len(setB) == 0 {
			return nil, fcerr.New(fcerr.EmptyInputSet, "list B is empty")
		}
		if !alignment.EqualLengths(append(append([]*alignment.Sequence(nil), setA...), setB...)) {
			return nil, fcerr.New(fcerr.UnequalSequenceLength, "lists A and B differ in length")
		}
		r.MDCs = compare.ComputeMDCs(setA, setB, m)
		return r, nil
	}
	switch op {
	case OpNucs:
		r.NonUnique = compare.ListNonUniqueCharactersInSet(setA)
	case OpDiff:
		r.Columns = compare.DifferencesWithinSet(setA)
	case OpAgree:
		r.Columns = compare.AgreementsWithinSet(setA)
	default:
		return nil, fcerr.New(fcerr.InvalidMethod, "invalid operation %d", int(op))
	}
	return r, nil
}

// Count is the number of reported columns.
func (r *Result) Count() int {
	switch {
	case r.MDCs != nil:
		return len(r.MDCs)
	case r.NonUnique != nil:
		return len(r.NonUnique)
	}
	return len(r.Columns)
}
