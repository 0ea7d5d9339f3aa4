// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fastachar/internal/app"
	"fastachar/pkg/api"
)

const alignment = `>A1_Lyrodus_pedicellatus
ACGTACGTAC
>A2_Lyrodus_pedicellatus
ACGTACGTAC
>B1_Teredo_navalis
TCGTACGTAG
>B2_Teredo_bartschi
GCGTACGTAT
`

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// run isolates every invocation from the user's real config file.
func run(t *testing.T, dir string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	argv := append([]string{"--config", filepath.Join(dir, "fastacharrc")}, args...)
	code = app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndMDC(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)

	code, out, errs := run(t, dir, "-a", "Lyrodus", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	for _, want := range []string{
		"Filename : " + fa,
		" 1 Lyrodus_pedicellatus (A1)",
		" 2 Teredo_bartschi (B2)",
		"       1: A            |  T G\n",
		"      10: C            |  G T\n",
		"2 of 10 characters are unique (20.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestNoMatchExitCode(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)

	code, out, _ := run(t, dir, "-a", "Lyrodus", "-b", "Lyrodus", fa)
	if code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if !strings.Contains(out, "List A has no MDCs") {
		t.Fatalf("report still expected:\n%s", out)
	}
	if code, _, _ := run(t, dir, "-a", "Lyrodus", "-b", "Lyrodus", "--no-match-exit-code", "0", fa); code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
}

func TestNucsAndJSONL(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)

	code, out, errs := run(t, dir, "-a", "Teredo", "-m", "nucs", "-o", "jsonl", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 columns, got %d:\n%s", len(lines), out)
	}
	var c api.ColumnV1
	if err := json.Unmarshal([]byte(lines[1]), &c); err != nil {
		t.Fatal(err)
	}
	if c.Operation != "nucs" || c.Position != 10 || c.SymbolsA != "GT" || c.Resolvable {
		t.Fatalf("column: %+v", c)
	}
}

func TestCaseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)
	cs := filepath.Join(dir, "lyrodus.case")

	code, direct, errs := run(t, dir, "--species-a", "Lyrodus_pedicellatus", "-m", "potential", "--save-case", cs, fa)
	if code != 1 && code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	data, err := os.ReadFile(cs)
	if err != nil {
		t.Fatalf("case not saved: %v", err)
	}
	if !strings.Contains(string(data), "setB = Teredo_bartschi , Teredo_navalis") ||
		!strings.Contains(string(data), "operation = potential") {
		t.Fatalf("case file:\n%s", data)
	}

	code2, viaCase, errs := run(t, dir, "--case", cs)
	if code2 != code {
		t.Fatalf("case run exit %d (direct %d), stderr=%s", code2, code, errs)
	}
	var kept []string
	for _, ln := range strings.Split(viaCase, "\n") {
		if !strings.HasPrefix(ln, "Case     :") {
			kept = append(kept, ln)
		}
	}
	if strings.Join(kept, "\n") != direct {
		t.Fatalf("case run differs:\n--- direct\n%s\n--- case\n%s", direct, viaCase)
	}
}

func TestParallelBatchMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "aln.fas", alignment)
	var cases []string
	for i, sp := range []string{"Lyrodus_pedicellatus", "Teredo_navalis", "Teredo_bartschi"} {
		body := "filename = aln.fas\nsetA = " + sp + "\nsetB = " + otherThan(sp) + "\noperation = " + []string{"1", "2", "nucs"}[i] + "\n"
		cases = append(cases, "--case", write(t, dir, sp+".case", body))
	}

	runBatch := func(threads string) string {
		args := append([]string{"-t", threads, "-o", "json"}, cases...)
		code, out, errs := run(t, dir, args...)
		if code != 0 && code != 1 {
			t.Fatalf("threads=%s exit %d, stderr=%s", threads, code, errs)
		}
		return out
	}
	serial, parallel := runBatch("1"), runBatch("4")
	if serial != parallel {
		t.Fatalf("parallel output differs from serial")
	}
	var reports []api.ReportV1
	if err := json.Unmarshal([]byte(serial), &reports); err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 || reports[0].Operation != "mdc" || reports[2].Operation != "nucs" {
		t.Fatalf("reports out of order: %+v", reports)
	}
}

func otherThan(sp string) string {
	var out []string
	for _, s := range []string{"Lyrodus_pedicellatus", "Teredo_navalis", "Teredo_bartschi"} {
		if s != sp {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}

func TestBatchSurvivesFailingJob(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "aln.fas", alignment)
	good := write(t, dir, "good.case", "filename = aln.fas\nsetA = Lyrodus_pedicellatus\nsetB = Teredo_navalis\n")
	bad := write(t, dir, "bad.case", "filename = missing.fas\nsetA = Lyrodus_pedicellatus\n")

	code, out, errs := run(t, dir, "--case", bad, "--case", good)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if !strings.Contains(errs, "kind=file-not-found") {
		t.Fatalf("stderr lacks kind: %s", errs)
	}
	if !strings.Contains(out, "Case     : "+good) {
		t.Fatalf("good case not reported:\n%s", out)
	}
}

func TestInputErrors(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)
	bad := write(t, dir, "bad.fas", ">A1_Lyrodus\nACGZ\n")

	cases := []struct {
		args []string
		kind string
	}{
		{[]string{"-a", "Nope", fa}, "kind=empty-input-set"},
		{[]string{"-a", "Lyrodus", bad}, "kind=invalid-character"},
		{[]string{"-a", "Lyrodus", filepath.Join(dir, "absent.fas")}, "kind=file-not-found"},
		{[]string{"-a", "(", fa}, "kind=invalid-selection"},
	}
	for _, c := range cases {
		code, _, errs := run(t, dir, c.args...)
		if code != 2 || !strings.Contains(errs, c.kind) {
			t.Errorf("%v: exit %d stderr=%s", c.args, code, errs)
		}
	}
}

func TestXLSXToFile(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)
	xl := filepath.Join(dir, "out.xlsx")

	code, out, errs := run(t, dir, "-a", "Lyrodus", "-o", "xlsx", "--out", xl, fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	if out != "" {
		t.Fatalf("stdout not empty: %q", out)
	}
	data, err := os.ReadFile(xl)
	if err != nil || !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("xlsx not written: %v", err)
	}
}

func TestListSpecies(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)

	code, out, _ := run(t, dir, "--list-species", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "Lyrodus_pedicellatus\tA1,A2\nTeredo_bartschi\tB2\nTeredo_navalis\tB1\n"
	if out != want {
		t.Fatalf("got %q", out)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", ">x1 Lyrodus\nACGT\n>x2 Teredo\nTCGT\n")

	code, _, errs := run(t, dir, "--save-config", "--header-format", "{ID} {SPECIES}", "--list-species", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	data, err := os.ReadFile(filepath.Join(dir, "fastacharrc"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "{ID} {SPECIES}") {
		t.Fatalf("config:\n%s", data)
	}
	// the saved template is picked up without the flag
	code, out, _ := run(t, dir, "--list-species", fa)
	if code != 0 || !strings.Contains(out, "Lyrodus\tx1\n") {
		t.Fatalf("exit %d out=%q", code, out)
	}
}

func TestHelpVersionExamples(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{{"-h"}, {"--version"}, {"--examples"}} {
		code, out, _ := run(t, dir, args...)
		if code != 0 || out == "" {
			t.Errorf("%v: exit %d, out=%q", args, code, out)
		}
	}
	// no arguments at all prints usage
	var out, errBuf bytes.Buffer
	if code := app.Run(nil, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "fastachar") {
		t.Errorf("no args: exit %d, out=%q", code, out.String())
	}
	// a flag alone is not a run request
	if code, _, errs := run(t, dir); code != 2 || !strings.Contains(errs, "provide an alignment file") {
		t.Errorf("--config alone: exit %d, stderr=%q", code, errs)
	}
	if code, _, errs := run(t, dir, "--bogus"); code != 2 || errs == "" {
		t.Fatalf("unknown flag: exit %d", code)
	}
}

func TestSaveCaseSkippedWhenRunFails(t *testing.T) {
	dir := t.TempDir()
	bad := write(t, dir, "bad.fas", ">A1_Lyrodus\nACGZ\n")
	cs := filepath.Join(dir, "bad.case")

	code, _, errs := run(t, dir, "-a", "Lyrodus", "--save-case", cs, bad)
	if code != 2 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	if !strings.Contains(errs, "case not saved") {
		t.Fatalf("no warning in stderr:\n%s", errs)
	}
	if _, err := os.Stat(cs); !os.IsNotExist(err) {
		t.Fatalf("case file written: %v", err)
	}
}

func TestEmptyListBWarns(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "aln.fas", alignment)

	code, out, errs := run(t, dir, "-a", ".", "-m", "nucs", fa)
	if code != 0 && code != 1 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	if !strings.Contains(errs, "level=warning") || !strings.Contains(errs, "list B is empty") {
		t.Fatalf("no warning in stderr:\n%s", errs)
	}
	if !strings.Contains(out, "List A:") {
		t.Fatalf("report missing:\n%s", out)
	}
}
