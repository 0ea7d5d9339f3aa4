// internal/app/job.go
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"fastachar/internal/alignment"
	"fastachar/internal/caseio"
	"fastachar/internal/cli"
	"fastachar/internal/config"
	"fastachar/internal/fasta"
	"fastachar/internal/fcerr"
	"fastachar/internal/report"
)

// job is one comparison: either an alignment file with the command-line
// selection, or a case file that carries its own.
type job struct {
	File     string
	CasePath string

	Op       report.Operation
	ListA    string
	ListB    string
	SpeciesA []string
	SpeciesB []string
	Exclude  string
	Invert   bool

	HeaderFormat string
	IDRegex      string
	SpeciesRegex string
}

// outcome is what a job hands to the ordered emitter. Job failures travel
// here instead of aborting the batch.
type outcome struct {
	job    *job
	aln    *alignment.Alignment
	result *report.Result
	err    error
}

func jobsFromOptions(o *cli.Options, cfg *config.Config) []*job {
	var jobs []*job
	for _, p := range o.Cases {
		jobs = append(jobs, &job{CasePath: cfg.Resolve(p)})
	}
	for _, in := range o.Inputs {
		jobs = append(jobs, &job{
			File:         cfg.Resolve(in),
			Op:           o.Op,
			ListA:        o.ListA,
			ListB:        o.ListB,
			SpeciesA:     o.SpeciesA,
			SpeciesB:     o.SpeciesB,
			Exclude:      o.Exclude,
			Invert:       o.Invert,
			HeaderFormat: cfg.HeaderFormat,
			IDRegex:      cfg.IDRegex,
			SpeciesRegex: cfg.SpeciesRegex,
		})
	}
	return jobs
}

// resolveCaseInput finds a case's alignment: as written, next to the case
// file, or under the working directory.
func resolveCaseInput(casePath, fn string, cfg *config.Config) string {
	if filepath.IsAbs(fn) || fn == "-" {
		return fn
	}
	if p := filepath.Join(filepath.Dir(casePath), fn); fileExists(p) {
		return p
	}
	return cfg.Resolve(fn)
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

// fromCase fills j from its case file. Empty case regexes fall back to cfg.
func (j *job) fromCase(cfg *config.Config) error {
	c, err := caseio.Load(j.CasePath)
	if err != nil {
		return err
	}
	if err := c.Check(); err != nil {
		var fe *fcerr.Error
		if errors.As(err, &fe) {
			return fe.At(j.CasePath, 0)
		}
		return err
	}
	j.File = resolveCaseInput(j.CasePath, c.Filename, cfg)
	j.Op = report.OpMDC
	if c.Operation != "" {
		if j.Op, err = report.ParseOperation(c.Operation); err != nil {
			return err
		}
	}
	j.SpeciesA, j.SpeciesB = c.SetA, c.SetB
	j.HeaderFormat = pick(c.HeaderFormat, cfg.HeaderFormat)
	j.IDRegex = pick(c.IDRegex, cfg.IDRegex)
	j.SpeciesRegex = pick(c.SpeciesRegex, cfg.SpeciesRegex)
	return nil
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// label names the job in logs and reports.
func (j *job) label() string {
	if j.CasePath != "" {
		return j.CasePath
	}
	return j.File
}

func warnUnknown(log logrus.FieldLogger, aln *alignment.Alignment, list string, names []string) {
	info := aln.SpeciesInfo()
	for _, n := range names {
		if _, ok := info[n]; !ok {
			log.WithField("list", list).Warnf("species %q not in alignment", n)
		}
	}
}

func (j *job) selectLists(log logrus.FieldLogger, aln *alignment.Alignment) (setA, setB []*alignment.Sequence, err error) {
	if j.ListA != "" {
		if setA, err = aln.SelectByRegex(j.ListA, j.Invert, j.Exclude); err != nil {
			return nil, nil, err
		}
	} else {
		warnUnknown(log, aln, "A", j.SpeciesA)
		setA = aln.SelectByNames(j.SpeciesA)
	}
	switch {
	case j.ListB != "":
		if setB, err = aln.SelectByRegex(j.ListB, false, ""); err != nil {
			return nil, nil, err
		}
	case len(j.SpeciesB) > 0:
		warnUnknown(log, aln, "B", j.SpeciesB)
		setB = aln.SelectByNames(j.SpeciesB)
	case j.CasePath == "":
		setB = aln.Complement(setA)
	}
	return setA, setB, nil
}

// run loads, selects and computes. It never returns an error itself except
// for cancellation; failures are carried in the outcome.
func (j *job) run(ctx context.Context, log logrus.FieldLogger, cfg *config.Config) (outcome, error) {
	out := outcome{job: j}
	fail := func(err error) (outcome, error) {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		out.err = err
		return out, nil
	}

	if j.CasePath != "" {
		if err := j.fromCase(cfg); err != nil {
			return fail(err)
		}
	}
	hf, err := fasta.NewHeaderFormat(j.HeaderFormat, j.IDRegex, j.SpeciesRegex)
	if err != nil {
		return fail(err)
	}
	aln, err := fasta.Load(ctx, j.File, hf)
	if err != nil {
		return fail(err)
	}
	out.aln = aln

	setA, setB, err := j.selectLists(log, aln)
	if err != nil {
		return fail(err)
	}
	log.WithFields(logrus.Fields{
		"file":   j.File,
		"op":     j.Op.String(),
		"list_a": len(setA),
		"list_b": len(setB),
	}).Debug("lists selected")
	if !j.Op.NeedsB() && len(setB) == 0 {
		log.WithField("file", j.File).Warnf("list B is empty; %s reports list A only", j.Op)
	}

	res, err := report.Compute(j.File, j.Op, setA, setB)
	if err != nil {
		return fail(err)
	}
	res.Case = j.CasePath
	out.result = res
	return out, nil
}
