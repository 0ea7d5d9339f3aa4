// internal/app/run.go
package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"fastachar/internal/alignment"
	"fastachar/internal/caseio"
	"fastachar/internal/cli"
	"fastachar/internal/cmdutil"
	"fastachar/internal/config"
	"fastachar/internal/writers"
)

// runJobs executes every job concurrently and writes the results in job
// order. A failing job is logged and skipped; the batch goes on.
func runJobs(parent context.Context, dst io.Writer, log *logrus.Logger, o *cli.Options, cfg *config.Config) int {
	jobs := jobsFromOptions(o, cfg)

	bufSize := 2 * o.Threads
	inCh, writeErr := writers.StartResultWriter(dst, o.Output, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		total, failed int
		first         outcome
	)
	perr := cmdutil.RunOrdered(ctx, len(jobs), o.Threads,
		func(ctx context.Context, i int) (outcome, error) {
			return jobs[i].run(ctx, log, cfg)
		},
		func(i int, oc outcome) error {
			if i == 0 {
				first = oc
			}
			entry := log.WithField("job", oc.job.label())
			if oc.err != nil {
				failed++
				logError(entry, oc.err)
				return nil
			}
			n := oc.result.Count()
			total += n
			entry.WithField("columns", n).Debug("done")
			select {
			case inCh <- oc.result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return exitOK
	} else if werr != nil {
		logError(log, werr)
		return exitOutput
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return exitCancelled
		}
		logError(log, perr)
		return exitOutput
	}

	switch {
	case o.SaveCase == "":
	case first.result == nil:
		log.WithField("path", o.SaveCase).Warn("case not saved: the run failed")
	default:
		if err := saveCase(o.SaveCase, first); err != nil {
			logError(log, err)
			return exitOutput
		}
		log.WithField("path", o.SaveCase).Info("case saved")
	}

	switch {
	case failed > 0:
		return exitUsage
	case total == 0:
		return o.NoMatchExitCode
	}
	return exitOK
}

func speciesOf(seqs []*alignment.Sequence) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range seqs {
		if !seen[s.Species] {
			seen[s.Species] = true
			out = append(out, s.Species)
		}
	}
	sort.Strings(out)
	return out
}

// saveCase records the run as explicit species lists, whatever selection
// produced them.
func saveCase(path string, oc outcome) error {
	fn := oc.job.File
	if abs, err := filepath.Abs(fn); err == nil && fn != "-" {
		fn = abs
	}
	c := &caseio.Case{
		Filename:     fn,
		Species:      oc.aln.SpeciesList(),
		SetA:         speciesOf(oc.result.SetA),
		SetB:         speciesOf(oc.result.SetB),
		Operation:    oc.result.Operation.String(),
		HeaderFormat: oc.job.HeaderFormat,
		IDRegex:      oc.job.IDRegex,
		SpeciesRegex: oc.job.SpeciesRegex,
	}
	return c.Save(path)
}
