// internal/report/operation.go
package report

import (
	"strings"

	"fastachar/internal/compare"
	"fastachar/internal/fcerr"
)

// Operation is what a run computes.
type Operation int

const (
	OpMDC       Operation = iota + 1 // MDCs of list A against list B
	OpPotential                      // potential MDCs of list A against list B
	OpNucs                           // non-unique characters of list A
	OpDiff                           // columns where list A does not agree
	OpAgree                          // columns where list A agrees
)

var opNames = map[Operation]string{
	OpMDC:       "mdc",
	OpPotential: "potential",
	OpNucs:      "nucs",
	OpDiff:      "diff",
	OpAgree:     "agree",
}

func (op Operation) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "invalid"
}

// Method maps the cross-list operations onto a comparator method.
func (op Operation) Method() (compare.Method, bool) {
	switch op {
	case OpMDC:
		return compare.MDC, true
	case OpPotential:
		return compare.PotentialMDCOnly, true
	}
	return 0, false
}

// NeedsB reports whether the operation reads list B.
func (op Operation) NeedsB() bool {
	_, ok := op.Method()
	return ok
}

// Title is the long description used in report headers.
func (op Operation) Title() string {
	switch op {
	case OpMDC:
		return "Determination Molecular Diagnostic Characters"
	case OpPotential:
		return "Determination POTENTIAL Molecular Diagnostic Characters"
	case OpNucs:
		return "Determination non-unique characters"
	case OpDiff:
		return "Determination differing characters"
	case OpAgree:
		return "Determination agreeing characters"
	}
	return ""
}

// ParseOperation accepts the operation names, the comparator method names
// and the numeric codes found in older case files (1 mdc, 2 potential, 3 nucs).
func ParseOperation(s string) (Operation, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "1":
		return OpMDC, nil
	case "2":
		return OpPotential, nil
	case "3":
		return OpNucs, nil
	}
	for op, name := range opNames {
		if v == name {
			return op, nil
		}
	}
	if m, err := compare.ParseMethod(v); err == nil {
		if m == compare.MDC {
			return OpMDC, nil
		}
		return OpPotential, nil
	}
	return 0, fcerr.New(fcerr.InvalidMethod, "unknown operation %q (want mdc|potential|nucs|diff|agree)", s)
}
