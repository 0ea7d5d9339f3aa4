// internal/alignment/sequence.go
package alignment

import (
	"errors"
	"strconv"

	"fastachar/internal/fcerr"
)

// Maskable symbols. Each is tested on its own; a mixed run such as "NX"
// at an edge only masks the part made of the symbol anchored there.
var maskable = [...]byte{'N', 'X', '-'}

// Sequence is one aligned record: an ID, a species label and its characters.
type Sequence struct {
	ID      string
	Species string
	Data    string

	chars []Character
}

// NewSequence builds the characters of data and marks terminal runs of
// N, X and gap as masked. An unknown symbol fails with InvalidCharacter.
func NewSequence(id, species, data string) (*Sequence, error) {
	masked := MaskRuns(data)
	chars := make([]Character, len(data))
	for i := 0; i < len(data); i++ {
		c, err := NewCharacter(data[i], masked[i])
		if err != nil {
			var fe *fcerr.Error
			if errors.As(err, &fe) {
				e := *fe
				e.Msg += " at position " + strconv.Itoa(i+1)
				return nil, &e
			}
			return nil, err
		}
		chars[i] = c
	}
	return &Sequence{ID: id, Species: species, Data: data, chars: chars}, nil
}

// MaskRuns returns the masked flag for every position of data: true inside
// a run of one maskable symbol that starts at index 0 or ends at the last
// index. Interior runs stay unmasked.
func MaskRuns(data string) []bool {
	n := len(data)
	masked := make([]bool, n)
	for _, m := range maskable {
		i := 0
		for i < n && upper(data[i]) == m {
			masked[i] = true
			i++
		}
		j := n - 1
		for j >= 0 && upper(data[j]) == m {
			masked[j] = true
			j--
		}
	}
	return masked
}

func (s *Sequence) Len() int { return len(s.chars) }

// At returns the character at column i (0-based).
func (s *Sequence) At(i int) Character { return s.chars[i] }

// MaskedPositions lists the 0-based masked columns in ascending order.
func (s *Sequence) MaskedPositions() []int {
	var out []int
	for i, c := range s.chars {
		if c.masked {
			out = append(out, i)
		}
	}
	return out
}

func (s *Sequence) String() string {
	return "Sequence " + s.Species + "(" + s.ID + ") " + s.Data
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
