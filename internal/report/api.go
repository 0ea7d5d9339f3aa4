// internal/report/api.go
package report

import (
	"fastachar/internal/alignment"
	"fastachar/internal/state"
	"fastachar/pkg/api"
)

func toAPISequences(seqs []*alignment.Sequence) []api.SequenceV1 {
	out := make([]api.SequenceV1, 0, len(seqs))
	for _, s := range seqs {
		out = append(out, api.SequenceV1{ID: s.ID, Species: s.Species})
	}
	return out
}

func column(r *Result, j int, a state.ColumnState) api.ColumnV1 {
	return api.ColumnV1{
		Operation: r.Operation.String(),
		Source:    r.Filename,
		Position:  j + 1,
		SymbolsA:  string(a.Symbols()),
		UnionA:    string(a.Union().Bases()),
	}
}

// ToAPIColumns converts every reported column to the v1 wire schema, in
// column order.
func ToAPIColumns(r *Result) []api.ColumnV1 {
	out := make([]api.ColumnV1, 0, r.Count())
	for _, d := range r.MDCs {
		c := column(r, d.Index, d.A)
		c.SymbolsB = string(d.B.Symbols())
		c.UnionB = string(d.B.Union().Bases())
		out = append(out, c)
	}
	for _, nu := range r.NonUnique {
		c := column(r, nu.Index, nu.State)
		c.Resolvable = nu.Resolvable
		out = append(out, c)
	}
	for _, col := range r.Columns {
		out = append(out, column(r, col.Index, col.State))
	}
	return out
}

// ToAPI converts a whole run to the v1 wire schema.
func ToAPI(r *Result) api.ReportV1 {
	return api.ReportV1{
		Source:    r.Filename,
		Case:      r.Case,
		Operation: r.Operation.String(),
		Length:    r.Length,
		ListA:     toAPISequences(r.SetA),
		ListB:     toAPISequences(r.SetB),
		Columns:   ToAPIColumns(r),
	}
}
