package config

import (
	"os"
	"path/filepath"
	"testing"

	"fastachar/internal/fasta"
)

func TestLoadMissingGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope", "fastacharrc"))
	if err != nil {
		t.Fatal(err)
	}
	if c.HeaderFormat != fasta.DefaultTemplate || c.IDRegex != fasta.DefaultIDRegex || c.SpeciesRegex != fasta.DefaultSpeciesRegex {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if _, err := c.Header(); err != nil {
		t.Fatalf("default header format: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg", "fastacharrc")
	c := Defaults(path)
	c.WorkingDirectory = dir
	c.HeaderFormat = "{SPECIES}_{ID}"
	c.IDRegex = `[A-Z]{2}[0-9\.]+`
	c.SpeciesRegex = "[A-Za-z_]+"
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.WorkingDirectory != dir || got.HeaderFormat != c.HeaderFormat || got.IDRegex != c.IDRegex || got.SpeciesRegex != c.SpeciesRegex {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Path() != path {
		t.Fatalf("path %q", got.Path())
	}
}

func TestStaleWorkingDirectoryReset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	data := "[DEFAULTS]\nworking_directory = " + filepath.Join(dir, "gone") + "\n[REGEX]\nid = [0-9]+\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.WorkingDirectory == filepath.Join(dir, "gone") {
		t.Fatal("stale working directory kept")
	}
	if c.IDRegex != "[0-9]+" || c.SpeciesRegex != fasta.DefaultSpeciesRegex {
		t.Fatalf("partial section: %+v", c)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	c := &Config{WorkingDirectory: dir}
	if got := c.Resolve("-"); got != "-" {
		t.Fatalf("stdin changed: %q", got)
	}
	if got := c.Resolve("aln.fas"); got != filepath.Join(dir, "aln.fas") {
		t.Fatalf("Resolve = %q", got)
	}
}
