package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fastachar/internal/fcerr"
)

const plain = `>A1_Lyrodus_pedicellatus
NNACGTAC--
>A2_Lyrodus_pedicellatus
nnACGTACGT

>B1_Teredo_navalis
TTACGAACGT
`

func read(t *testing.T, data string) error {
	t.Helper()
	_, err := Read(context.Background(), strings.NewReader(data), "in.fas", nil)
	return err
}

func TestReadPlain(t *testing.T) {
	a, err := Read(context.Background(), strings.NewReader(plain), "in.fas", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Sequences) != 3 || a.Len() != 10 {
		t.Fatalf("got %d sequences of %d", len(a.Sequences), a.Len())
	}
	s := a.Sequences[1]
	if s.ID != "A2" || s.Species != "Lyrodus_pedicellatus" || s.Data != "NNACGTACGT" {
		t.Fatalf("unexpected sequence %+v", s)
	}
	if got := a.Sequences[0].MaskedPositions(); len(got) != 4 {
		t.Fatalf("masked = %v", got)
	}
}

func TestReadSequentialIDs(t *testing.T) {
	h, err := NewHeaderFormat("{SPECIES}", "", ".+")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Read(context.Background(), strings.NewReader(">x y\nAC\n>z\nAG\n"), "in", h)
	if err != nil {
		t.Fatal(err)
	}
	if a.Sequences[0].ID != "ID001" || a.Sequences[1].ID != "ID002" || a.Sequences[0].Species != "x y" {
		t.Fatalf("ids %q %q", a.Sequences[0].ID, a.Sequences[1].ID)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind fcerr.Kind
		line int
	}{
		{"invalid character", ">A1_x\nACGT\n>A2_y\nACZT\n", fcerr.InvalidCharacter, 4},
		{"unequal length", ">A1_x\nACGT\n>A2_y\nACG\n", fcerr.UnequalSequenceLength, 0},
		{"missing header", "ACGT\n", fcerr.FileInvalid, 1},
		{"header without data", ">A1_x\n>A2_y\nACGT\n", fcerr.FileInvalid, 1},
		{"trailing header", ">A1_x\nACGT\n>A2_y\n", fcerr.FileInvalid, 3},
		{"header mismatch", ">_x\nACGT\n", fcerr.InvalidHeader, 1},
		{"empty", "\n\n", fcerr.FileInvalid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := read(t, tt.data)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want kind %v", err, tt.kind)
			}
			var fe *fcerr.Error
			if !errors.As(err, &fe) || fe.Line != tt.line || fe.Path != "in.fas" {
				t.Fatalf("position = %+v, want line %d", fe, tt.line)
			}
		})
	}
}

func TestLoadGzipAndMissing(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "aln.fas.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte(plain))
	_ = gw.Close()
	_ = fh.Close()

	a, err := Load(context.Background(), gz, nil)
	if err != nil || len(a.Sequences) != 3 {
		t.Fatalf("gzip load: %v", err)
	}

	_, err = Load(context.Background(), filepath.Join(dir, "nope.fas"), nil)
	if !errors.Is(err, fcerr.FileNotFound) {
		t.Fatalf("want FileNotFound, got %v", err)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Read(ctx, strings.NewReader(plain), "in", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
