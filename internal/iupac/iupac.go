// internal/iupac/iupac.go
package iupac

import (
	"math/bits"
	"sort"
	"strings"

	"fastachar/internal/fcerr"
)

// BaseSet is a bit mask over the concrete bases plus the gap marker.
// The gap bit never overlaps a base bit, so a gap never agrees with a base.
type BaseSet uint8

const (
	A BaseSet = 1 << iota
	C
	G
	T
	Gap

	Any = A | C | G | T
)

// GapSymbol is the alignment gap character.
const GapSymbol = '-'

var codeMap = map[byte]BaseSet{
	'A': A,
	'C': C,
	'G': G,
	'T': T,
	'R': A | G,
	'Y': C | T,
	'S': G | C,
	'W': A | T,
	'K': T | G,
	'M': C | A,
	'B': C | G | T,
	'D': A | G | T,
	'H': A | C | T,
	'V': A | G | C,
	'N': Any,
	'X': Any,
	'?': Any,
	'-': Gap,
}

// Expand returns the base set a symbol stands for. Lower-case input is
// accepted; anything outside the table is an InvalidCharacter error.
func Expand(symbol byte) (BaseSet, error) {
	c := symbol
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	m, ok := codeMap[c]
	if !ok {
		return 0, fcerr.New(fcerr.InvalidCharacter, "invalid character %q (want one of %s)", symbol, symbols())
	}
	return m, nil
}

// symbols lists the table keys in ascending byte order.
func symbols() []byte {
	out := make([]byte, 0, len(codeMap))
	for k := range codeMap {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s BaseSet) Len() int                    { return bits.OnesCount8(uint8(s)) }
func (s BaseSet) Empty() bool                 { return s == 0 }
func (s BaseSet) Union(o BaseSet) BaseSet     { return s | o }
func (s BaseSet) Intersect(o BaseSet) BaseSet { return s & o }

// Has reports whether the concrete base (or '-') is a member.
func (s BaseSet) Has(base byte) bool {
	switch base {
	case 'A', 'a':
		return s&A != 0
	case 'C', 'c':
		return s&C != 0
	case 'G', 'g':
		return s&G != 0
	case 'T', 't':
		return s&T != 0
	case GapSymbol:
		return s&Gap != 0
	}
	return false
}

var order = [...]struct {
	bit BaseSet
	sym byte
}{{A, 'A'}, {C, 'C'}, {G, 'G'}, {T, 'T'}, {Gap, GapSymbol}}

// Bases returns the members as symbols in A, C, G, T, '-' order.
func (s BaseSet) Bases() []byte {
	out := make([]byte, 0, s.Len())
	for _, o := range order {
		if s&o.bit != 0 {
			out = append(out, o.sym)
		}
	}
	return out
}

// String renders the set as {A,G}.
func (s BaseSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Bases() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(c)
	}
	b.WriteByte('}')
	return b.String()
}
