// internal/app/species.go
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"fastachar/internal/cli"
	"fastachar/internal/config"
	"fastachar/internal/fasta"
)

// listSpecies prints "species<TAB>id,id,..." per species, sorted by name.
// With several inputs each block is preceded by "# file".
func listSpecies(ctx context.Context, w io.Writer, log logrus.FieldLogger, o *cli.Options, cfg *config.Config) int {
	hf, err := cfg.Header()
	if err != nil {
		logError(log, err)
		return exitUsage
	}
	code := exitOK
	for _, in := range o.Inputs {
		path := cfg.Resolve(in)
		aln, err := fasta.Load(ctx, path, hf)
		if err != nil {
			if ctx.Err() != nil {
				return exitCancelled
			}
			logError(log.WithField("file", path), err)
			code = exitUsage
			continue
		}
		if len(o.Inputs) > 1 {
			_, _ = fmt.Fprintf(w, "# %s\n", path)
		}
		info := aln.SpeciesInfo()
		for _, sp := range aln.SpeciesList() {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", sp, strings.Join(info[sp], ","))
		}
	}
	return code
}
