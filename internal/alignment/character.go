// internal/alignment/character.go
package alignment

import "fastachar/internal/iupac"

// Character is one position of one sequence. It is immutable.
type Character struct {
	symbol byte
	bases  iupac.BaseSet
	masked bool
}

// NewCharacter expands symbol through the IUPAC table.
func NewCharacter(symbol byte, masked bool) (Character, error) {
	b, err := iupac.Expand(symbol)
	if err != nil {
		return Character{}, err
	}
	return Character{symbol: symbol, bases: b, masked: masked}, nil
}

func (c Character) Symbol() byte         { return c.symbol }
func (c Character) Bases() iupac.BaseSet { return c.bases }
func (c Character) Masked() bool         { return c.masked }
