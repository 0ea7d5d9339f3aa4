// internal/compare/compare.go
package compare

import (
	"fastachar/internal/alignment"
	"fastachar/internal/fcerr"
	"fastachar/internal/state"
)

// Unique is the per-column result of MarkUniqueColumns.
type Unique struct {
	Unique bool
	State  state.ColumnState
}

// Column pairs a 0-based column index with the list's state there.
type Column struct {
	Index int
	State state.ColumnState
}

// NonUnique is a Column that does not agree internally. Resolvable is set
// when every contributor's base set shares exactly one base.
type NonUnique struct {
	Column
	Resolvable bool
}

// Diagnostic is one column returned by ComputeMDCs.
type Diagnostic struct {
	Index int
	A     state.ColumnState
	B     state.ColumnState
}

func width(seqs []*alignment.Sequence) int {
	if len(seqs) == 0 {
		return 0
	}
	return seqs[0].Len()
}

// MarkUniqueColumns returns one entry per column, in column order; Unique is
// true when the union of the unmasked base sets has exactly one member.
func MarkUniqueColumns(seqs []*alignment.Sequence) []Unique {
	n := width(seqs)
	out := make([]Unique, n)
	for j := 0; j < n; j++ {
		cs := state.FromColumn(seqs, j)
		out[j] = Unique{Unique: cs.Size() == 1, State: cs}
	}
	return out
}

func filterColumns(seqs []*alignment.Sequence, unique bool) []Column {
	var out []Column
	for j := 0; j < width(seqs); j++ {
		// decide on the allocation-free union first; build the state only for kept columns
		if (state.UnionOfColumn(seqs, j).Len() == 1) != unique {
			continue
		}
		out = append(out, Column{Index: j, State: state.FromColumn(seqs, j)})
	}
	return out
}

// DifferencesWithinSet lists the columns where the list does not agree:
// more than one distinct base, or no unmasked contributor at all.
func DifferencesWithinSet(seqs []*alignment.Sequence) []Column {
	return filterColumns(seqs, false)
}

// AgreementsWithinSet lists the columns where the list agrees.
func AgreementsWithinSet(seqs []*alignment.Sequence) []Column {
	return filterColumns(seqs, true)
}

// ListNonUniqueCharactersInSet is DifferencesWithinSet with the
// resolvable flag attached. Nothing is filtered on that flag.
func ListNonUniqueCharactersInSet(seqs []*alignment.Sequence) []NonUnique {
	cols := DifferencesWithinSet(seqs)
	out := make([]NonUnique, len(cols))
	for i, c := range cols {
		out[i] = NonUnique{Column: c, Resolvable: c.State.Resolvable()}
	}
	return out
}

// ComputeMDCs walks setA and setB in lock-step. Under MDC it considers the
// columns where setA agrees internally, under PotentialMDCOnly those where
// it does not. A column is kept iff neither side is without information and
// no base of setA's column occurs in setB's column. Results are in ascending
// column order.
//
// An invalid method is a programming error and panics.
func ComputeMDCs(setA, setB []*alignment.Sequence, method Method) []Diagnostic {
	if !method.Valid() {
		panic(fcerr.New(fcerr.InvalidMethod, "invalid method %d", int(method)))
	}
	n := width(setA)
	if m := width(setB); m < n {
		n = m
	}
	wantUnique := method == MDC

	var out []Diagnostic
	for j := 0; j < n; j++ {
		ua := state.UnionOfColumn(setA, j)
		if (ua.Len() == 1) != wantUnique {
			continue
		}
		ub := state.UnionOfColumn(setB, j)
		if ua.Empty() || ub.Empty() {
			continue
		}
		if !state.Disjoint(ua, ub) {
			continue
		}
		out = append(out, Diagnostic{
			Index: j,
			A:     state.FromColumn(setA, j),
			B:     state.FromColumn(setB, j),
		})
	}
	return out
}
