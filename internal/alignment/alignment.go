// internal/alignment/alignment.go
package alignment

import (
	"regexp"
	"sort"

	"fastachar/internal/fcerr"
)

// Alignment owns the sequences of one loaded file.
type Alignment struct {
	Sequences []*Sequence
}

// Len is the common sequence length, or 0 for an empty alignment.
func (a *Alignment) Len() int {
	if len(a.Sequences) == 0 {
		return 0
	}
	return a.Sequences[0].Len()
}

// EqualLengths reports whether every sequence has the same length.
// An empty list is not considered equal-length.
func EqualLengths(seqs []*Sequence) bool {
	if len(seqs) == 0 {
		return false
	}
	n := seqs[0].Len()
	for _, s := range seqs[1:] {
		if s.Len() != n {
			return false
		}
	}
	return true
}

// SpeciesInfo maps species name → IDs in file order.
func (a *Alignment) SpeciesInfo() map[string][]string {
	m := make(map[string][]string)
	for _, s := range a.Sequences {
		m[s.Species] = append(m[s.Species], s.ID)
	}
	return m
}

// SpeciesList returns the sorted, de-duplicated species names.
func (a *Alignment) SpeciesList() []string {
	info := a.SpeciesInfo()
	out := make([]string, 0, len(info))
	for k := range info {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// compileAnchored mirrors "match at the start of the name" semantics.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fcerr.Wrap(fcerr.InvalidSelection, err, "bad selection regex %q", pattern)
	}
	return re, nil
}

// SelectByRegex selects sequences whose species name matches pattern at its
// start. invert returns the non-matching ones. With exclude set, matches of
// exclude are removed from the selection; combined with invert it returns the
// sequences matching both pattern and exclude.
func (a *Alignment) SelectByRegex(pattern string, invert bool, exclude string) ([]*Sequence, error) {
	re, err := compileAnchored(pattern)
	if err != nil {
		return nil, err
	}
	var x *regexp.Regexp
	if exclude != "" {
		if x, err = compileAnchored(exclude); err != nil {
			return nil, err
		}
	}
	var out []*Sequence
	for _, s := range a.Sequences {
		m := re.MatchString(s.Species)
		var keep bool
		switch {
		case x == nil && invert:
			keep = !m
		case x == nil:
			keep = m
		case invert:
			keep = m && x.MatchString(s.Species)
		default:
			keep = m && !x.MatchString(s.Species)
		}
		if keep {
			out = append(out, s)
		}
	}
	return out, nil
}

// SelectTwoSets splits the alignment into the sequences matching pattern and
// the rest. Together they cover the whole alignment.
func (a *Alignment) SelectTwoSets(pattern string) (setA, setB []*Sequence, err error) {
	if setA, err = a.SelectByRegex(pattern, false, ""); err != nil {
		return nil, nil, err
	}
	if setB, err = a.SelectByRegex(pattern, true, ""); err != nil {
		return nil, nil, err
	}
	return setA, setB, nil
}

// SelectByNames keeps sequences whose species is in names, in file order.
func (a *Alignment) SelectByNames(names []string) []*Sequence {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	var out []*Sequence
	for _, s := range a.Sequences {
		if _, ok := want[s.Species]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Complement returns the sequences not present in set.
func (a *Alignment) Complement(set []*Sequence) []*Sequence {
	in := make(map[*Sequence]struct{}, len(set))
	for _, s := range set {
		in[s] = struct{}{}
	}
	var out []*Sequence
	for _, s := range a.Sequences {
		if _, ok := in[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
