// pkg/api/report_v1.go
package api

// SequenceV1 identifies one member of a list.
type SequenceV1 struct {
	ID      string `json:"id"`
	Species string `json:"species"`
}

// ColumnV1 is the stable JSON/JSONL schema for one reported alignment column.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ColumnV1 struct {
	Operation string `json:"operation"` // "mdc" | "potential" | "nucs" | "diff" | "agree"
	Source    string `json:"source_file"`
	Position  int    `json:"position"`  // 1-based
	SymbolsA  string `json:"symbols_a"` // one symbol per list A sequence, ' ' when masked
	UnionA    string `json:"union_a"`
	SymbolsB  string `json:"symbols_b,omitempty"`
	UnionB    string `json:"union_b,omitempty"`

	// nucs only
	Resolvable bool `json:"resolvable,omitempty"`
}

// ReportV1 is the JSON document written for one run.
type ReportV1 struct {
	Source    string       `json:"source_file"`
	Case      string       `json:"case_file,omitempty"`
	Operation string       `json:"operation"`
	Length    int          `json:"length"`
	ListA     []SequenceV1 `json:"list_a"`
	ListB     []SequenceV1 `json:"list_b"`
	Columns   []ColumnV1   `json:"columns"`
}
