// internal/state/state.go
package state

import (
	"strings"

	"fastachar/internal/alignment"
	"fastachar/internal/iupac"
)

// Blank stands in for a masked contributor in Symbols.
const Blank = ' '

// ColumnState is the character state of one alignment column across a list
// of sequences. Masked contributors keep their slot in Symbols but take no
// part in Union or IntersectionOfSubsets.
type ColumnState struct {
	symbols []byte
	bases   []iupac.BaseSet
	union   iupac.BaseSet
}

// New builds the state from one Character per sequence.
func New(chars []alignment.Character) ColumnState {
	cs := ColumnState{
		symbols: make([]byte, 0, len(chars)),
		bases:   make([]iupac.BaseSet, 0, len(chars)),
	}
	for _, c := range chars {
		cs.add(c)
	}
	return cs
}

// FromColumn builds the state of column j of seqs without an intermediate
// Character slice.
func FromColumn(seqs []*alignment.Sequence, j int) ColumnState {
	cs := ColumnState{
		symbols: make([]byte, 0, len(seqs)),
		bases:   make([]iupac.BaseSet, 0, len(seqs)),
	}
	for _, s := range seqs {
		cs.add(s.At(j))
	}
	return cs
}

// UnionOfColumn is the Union FromColumn would produce, without allocating.
func UnionOfColumn(seqs []*alignment.Sequence, j int) iupac.BaseSet {
	var u iupac.BaseSet
	for _, s := range seqs {
		if c := s.At(j); !c.Masked() {
			u |= c.Bases()
		}
	}
	return u
}

func (cs *ColumnState) add(c alignment.Character) {
	if c.Masked() {
		cs.symbols = append(cs.symbols, Blank)
		return
	}
	cs.symbols = append(cs.symbols, c.Symbol())
	cs.bases = append(cs.bases, c.Bases())
	cs.union |= c.Bases()
}

// Symbols returns one symbol per input sequence, Blank where masked.
func (cs ColumnState) Symbols() []byte { return append([]byte(nil), cs.symbols...) }

// Joined renders Symbols separated by sep.
func (cs ColumnState) Joined(sep string) string {
	var b strings.Builder
	for i, c := range cs.symbols {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Contributors is the number of input sequences, masked ones included.
func (cs ColumnState) Contributors() int { return len(cs.symbols) }

// PerSequenceBases returns the base sets of the unmasked contributors.
func (cs ColumnState) PerSequenceBases() []iupac.BaseSet {
	return append([]iupac.BaseSet(nil), cs.bases...)
}

func (cs ColumnState) Union() iupac.BaseSet { return cs.union }

// Size is the number of distinct bases across unmasked contributors.
// 1 means the list agrees at this column, modulo ambiguity.
func (cs ColumnState) Size() int { return cs.union.Len() }

// Empty reports that every contributor was masked: no information.
func (cs ColumnState) Empty() bool { return len(cs.bases) == 0 }

// IntersectionOfSubsets intersects the per-sequence base sets. It is empty
// when there are no unmasked contributors; callers must not read that as
// agreement.
func (cs ColumnState) IntersectionOfSubsets() iupac.BaseSet {
	if len(cs.bases) == 0 {
		return 0
	}
	x := cs.bases[0]
	for _, b := range cs.bases[1:] {
		x &= b
	}
	return x
}

// Resolvable reports whether every contributor shares exactly one base.
func (cs ColumnState) Resolvable() bool { return cs.IntersectionOfSubsets().Len() == 1 }

// DisjointFrom is true iff both unions are non-empty and share no member.
func (cs ColumnState) DisjointFrom(o ColumnState) bool {
	return Disjoint(cs.union, o.union)
}

// Disjoint applies the DisjointFrom rule to two unions.
func Disjoint(a, b iupac.BaseSet) bool {
	return !a.Empty() && !b.Empty() && a.Intersect(b).Empty()
}

func (cs ColumnState) String() string {
	return cs.union.String() + " (" + string(cs.symbols) + ")"
}
