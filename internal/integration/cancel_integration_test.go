package integration

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"fastachar/internal/app"
)

func TestCancelledRunExits130(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "big.fas", strings.Repeat(">S1_Lyrodus\nACGT\n>S2_Teredo\nTCGT\n", 1000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	argv := []string{"--config", filepath.Join(dir, "rc"), "-a", "Lyrodus", fa}
	if code := app.RunContext(ctx, argv, io.Discard, io.Discard); code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
