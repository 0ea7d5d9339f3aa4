package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fastachar/internal/alignment"
	"fastachar/internal/report"
	"fastachar/pkg/api"
)

func mdcResult(t *testing.T) *report.Result {
	t.Helper()
	mk := func(id, sp, data string) *alignment.Sequence {
		s, err := alignment.NewSequence(id, sp, data)
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	a := []*alignment.Sequence{mk("A1", "Alpha", "ACGT"), mk("A2", "Alpha", "ACGT")}
	b := []*alignment.Sequence{mk("B1", "Beta", "TCGA")}
	r, err := report.Compute("aln.fas", report.OpMDC, a, b)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func run(t *testing.T, format string, results ...*report.Result) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartResultWriter(&buf, format, 1)
	for _, r := range results {
		in <- r
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, "nope-format", mdcResult(t), mdcResult(t))
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "json,jsonl,text,xlsx" {
		t.Fatalf("Formats() = %s", got)
	}
}

func TestJSONArray(t *testing.T) {
	out, err := run(t, FormatJSON, mdcResult(t), mdcResult(t))
	if err != nil {
		t.Fatal(err)
	}
	var got []api.ReportV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	if len(got) != 2 || len(got[0].Columns) != 2 || got[0].Columns[1].Position != 4 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestJSONLOneColumnPerLine(t *testing.T) {
	out, err := run(t, FormatJSONL, mdcResult(t), mdcResult(t))
	if err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	var n int
	for sc.Scan() {
		n++
		var c api.ColumnV1
		if err := json.Unmarshal(sc.Bytes(), &c); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
		if c.Operation != "mdc" || c.Source != "aln.fas" {
			t.Fatalf("line %d: %+v", n, c)
		}
	}
	if n != 4 {
		t.Fatalf("want 4 lines, got %d", n)
	}
}

func TestTextConcatenatesReports(t *testing.T) {
	out, err := run(t, FormatText, mdcResult(t), mdcResult(t))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "Filename : aln.fas"); got != 2 {
		t.Fatalf("want 2 report blocks, got %d\n%s", got, out)
	}
}

func TestXLSXMagic(t *testing.T) {
	out, err := run(t, FormatXLSX, mdcResult(t))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "PK") {
		t.Fatal("xlsx output is not a zip container")
	}
}
