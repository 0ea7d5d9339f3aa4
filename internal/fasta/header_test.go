package fasta

import (
	"errors"
	"testing"

	"fastachar/internal/fcerr"
)

func TestHeaderParse(t *testing.T) {
	tests := []struct {
		name                  string
		tmpl, idRe, spRe, hdr string
		id, species           string
	}{
		{"default", DefaultTemplate, DefaultIDRegex, DefaultSpeciesRegex,
			">WBET042_Lyrodus_pedicellatus_Brittany_France", "WBET042", "Lyrodus_pedicellatus_Brittany_France"},
		{"default space", DefaultTemplate, DefaultIDRegex, DefaultSpeciesRegex,
			">AB1.2 Teredo navalis", "AB1.2", "Teredo navalis"},
		{"species first", "{SPECIES}_{ID}", `[A-Z]{2}[0-9]+`, `[A-Za-z_]+`,
			">Teredo_navalis_AB12", "AB12", "Teredo_navalis"},
		{"no id placeholder", "{SPECIES}", "", `.+`,
			">Teredo navalis Denmark", "", "Teredo navalis Denmark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHeaderFormat(tt.tmpl, tt.idRe, tt.spRe)
			if err != nil {
				t.Fatal(err)
			}
			id, sp, err := h.Parse(tt.hdr)
			if err != nil {
				t.Fatal(err)
			}
			if id != tt.id || sp != tt.species {
				t.Fatalf("Parse(%q) = (%q, %q), want (%q, %q)", tt.hdr, id, sp, tt.id, tt.species)
			}
		})
	}
}

func TestHeaderMismatch(t *testing.T) {
	h := DefaultHeaderFormat()
	for _, hdr := range []string{">", ">   ", ">#weird"} {
		if _, _, err := h.Parse(hdr); !errors.Is(err, fcerr.InvalidHeader) {
			t.Errorf("Parse(%q) err = %v, want InvalidHeader", hdr, err)
		}
	}
}

func TestBadHeaderFormat(t *testing.T) {
	if _, err := NewHeaderFormat("{ID}(_{SPECIES}", DefaultIDRegex, DefaultSpeciesRegex); !errors.Is(err, fcerr.InvalidHeader) {
		t.Fatalf("want InvalidHeader for unbalanced template, got %v", err)
	}
	if !DefaultHeaderFormat().HasID() {
		t.Fatal("default template has {ID}")
	}
}
