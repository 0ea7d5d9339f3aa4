// internal/report/xlsx.go
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fastachar/internal/state"
)

const defaultSheet = "Sheet1"

// Workbook collects results as worksheets, one per run (worksheet00,
// worksheet01, ...). Resolvable non-unique columns are filled yellow.
type Workbook struct {
	f      *excelize.File
	sheets int
	alert  int

	sheet string
	row   int // next free row, 0-based
}

func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	alert, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Workbook{f: f, alert: alert}, nil
}

// set writes v at the 0-based (row, col) cell of the current sheet.
func (wb *Workbook) set(row, col int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return wb.f.SetCellValue(wb.sheet, cell, v)
}

func (wb *Workbook) formula(row, col int, ref string) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return wb.f.SetCellFormula(wb.sheet, cell, ref)
}

func (wb *Workbook) highlight(row, fromCol, toCol int) error {
	from, err := excelize.CoordinatesToCellName(fromCol+1, row+1)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol+1, row+1)
	if err != nil {
		return err
	}
	return wb.f.SetCellStyle(wb.sheet, from, to, wb.alert)
}

func (wb *Workbook) newSheet() error {
	name := fmt.Sprintf("worksheet%02d", wb.sheets)
	if _, err := wb.f.NewSheet(name); err != nil {
		return err
	}
	if wb.sheets == 0 {
		if err := wb.f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}
	wb.sheets++
	wb.sheet = name
	wb.row = 0
	return nil
}

// Add appends r as a new worksheet.
func (wb *Workbook) Add(r *Result) error {
	if err := wb.newSheet(); err != nil {
		return err
	}
	steps := []func(*Result) error{wb.addHeader}
	switch r.Operation {
	case OpMDC, OpPotential:
		steps = append(steps, wb.addMDCs)
	case OpNucs:
		steps = append(steps, wb.addNucs)
	case OpDiff, OpAgree:
		steps = append(steps, wb.addColumns)
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return fmt.Errorf("xlsx %s: %w", wb.sheet, err)
		}
	}
	return nil
}

func label(species, id string) string { return fmt.Sprintf("%s (%s)", species, id) }

func (wb *Workbook) addHeader(r *Result) error {
	cells := []struct {
		row, col int
		v        any
	}{
		{0, 0, "Filename:"}, {0, 1, r.Filename},
		{1, 0, "Operation:"}, {1, 1, r.Operation.Title()},
		{3, 0, nameA}, {3, 1, nameB},
	}
	for _, c := range cells {
		if err := wb.set(c.row, c.col, c.v); err != nil {
			return err
		}
	}
	n := 4
	for i := 0; i < len(r.SetA) || i < len(r.SetB); i++ {
		if i < len(r.SetA) {
			if err := wb.set(n, 0, label(r.SetA[i].Species, r.SetA[i].ID)); err != nil {
				return err
			}
		}
		if i < len(r.SetB) {
			if err := wb.set(n, 1, label(r.SetB[i].Species, r.SetB[i].ID)); err != nil {
				return err
			}
		}
		n++
	}
	wb.row = n
	return nil
}

// memberRow is the 1-based sheet row holding member i of a list.
func memberRow(i int) int { return 5 + i }

func (wb *Workbook) symbols(row, col int, cs state.ColumnState) error {
	for i, c := range cs.Symbols() {
		if err := wb.set(row, col+i, string(c)); err != nil {
			return err
		}
	}
	return nil
}

func (wb *Workbook) addMDCs(r *Result) error {
	potential := r.Operation == OpPotential
	n := wb.row + 2
	if len(r.MDCs) == 0 {
		msg := "No MDCs in " + nameA
		if potential {
			msg = "No potential MDCs in " + nameA
		}
		wb.row = n
		return wb.set(n, 0, msg)
	}
	lenA := 1
	title := "MDCs"
	if potential {
		lenA = r.MDCs[0].A.Contributors()
		title = "Potential MDCs"
	}
	if err := wb.set(n, 0, "Unique characters of "+nameA+":"); err != nil {
		return err
	}
	n++
	for _, c := range []struct {
		col int
		v   string
	}{{1, "Position"}, {2, title}, {2 + lenA, "Characters different in other species"}} {
		if err := wb.set(n, c.col, c.v); err != nil {
			return err
		}
	}
	n++
	if potential {
		for i := range r.SetA {
			if err := wb.formula(n, 2+i, fmt.Sprintf("A%d", memberRow(i))); err != nil {
				return err
			}
		}
	} else if err := wb.set(n, 2, nameA); err != nil {
		return err
	}
	for i := range r.SetB {
		if err := wb.formula(n, 2+lenA+i, fmt.Sprintf("B%d", memberRow(i))); err != nil {
			return err
		}
	}
	n++
	for _, d := range r.MDCs {
		if err := wb.set(n, 1, d.Index+1); err != nil {
			return err
		}
		var err error
		if potential {
			err = wb.symbols(n, 2, d.A)
		} else {
			err = wb.set(n, 2, string(firstSymbol(d.A)))
		}
		if err != nil {
			return err
		}
		if err := wb.symbols(n, 2+lenA, d.B); err != nil {
			return err
		}
		n++
	}
	wb.row = n
	return nil
}

func (wb *Workbook) listing(title string, n int) (int, error) {
	if err := wb.set(n, 0, title); err != nil {
		return n, err
	}
	n++
	if err := wb.set(n, 1, "Position"); err != nil {
		return n, err
	}
	if err := wb.set(n, 2, "Chars"); err != nil {
		return n, err
	}
	return n + 1, nil
}

func (wb *Workbook) addNucs(r *Result) error {
	n, err := wb.listing("The non-unique characters of "+nameA+" are:", wb.row+2)
	if err != nil {
		return err
	}
	for _, nu := range r.NonUnique {
		if err := wb.set(n, 1, nu.Index+1); err != nil {
			return err
		}
		if err := wb.symbols(n, 2, nu.State); err != nil {
			return err
		}
		if nu.Resolvable {
			if err := wb.highlight(n, 1, 1+nu.State.Contributors()); err != nil {
				return err
			}
		}
		n++
	}
	wb.row = n
	return nil
}

func (wb *Workbook) addColumns(r *Result) error {
	title := "The differing characters of " + nameA + " are:"
	if r.Operation == OpAgree {
		title = "The agreeing characters of " + nameA + " are:"
	}
	n, err := wb.listing(title, wb.row+2)
	if err != nil {
		return err
	}
	for _, c := range r.Columns {
		if err := wb.set(n, 1, c.Index+1); err != nil {
			return err
		}
		if err := wb.symbols(n, 2, c.State); err != nil {
			return err
		}
		n++
	}
	wb.row = n
	return nil
}

// WriteTo serializes the workbook as .xlsx.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) { return wb.f.WriteTo(w) }

func (wb *Workbook) Close() error { return wb.f.Close() }

// WriteXLSX renders all results into one workbook written to w.
func WriteXLSX(w io.Writer, results []*Result) error {
	wb, err := NewWorkbook()
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()
	for _, r := range results {
		if err := wb.Add(r); err != nil {
			return err
		}
	}
	_, err = wb.WriteTo(w)
	return err
}
