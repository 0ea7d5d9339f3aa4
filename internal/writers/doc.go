// Package writers turns computed reports into serialized outputs.
//
// Design:
//   - Writers own all presentation choices (text layout, JSON/JSONL, XLSX).
//   - report computes; app orchestrates; nothing here recomputes columns.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
