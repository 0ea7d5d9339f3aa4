// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"fastachar/internal/cli"
	"fastachar/internal/clibase"
	"fastachar/internal/cmdutil"
	"fastachar/internal/config"
	"fastachar/internal/fcerr"
	"fastachar/internal/version"
	"fastachar/internal/writers"
)

// Exit codes.
const (
	exitOK        = 0
	exitUsage     = 2 // bad flags or unusable input
	exitOutput    = 3 // writing results failed
	exitCancelled = 130
)

// flush finishes buffered stdout; a reader that went away is not an error.
func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitOutput
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fastachar")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flush(outw, stderr, exitOK)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, exitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintln(stderr, "run with --help for usage")
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fastachar version %s\n", version.Version)
		return flush(outw, stderr, exitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	cfg, err := loadConfig(&opts)
	if err != nil {
		logError(log, err)
		return exitUsage
	}
	if _, err := cfg.Header(); err != nil {
		logError(log, err)
		return exitUsage
	}
	if opts.SaveConfig {
		if err := cfg.Save(); err != nil {
			logError(log, err)
			return exitOutput
		}
		log.WithField("path", cfg.Path()).Info("config saved")
	}

	if opts.ListSpecies {
		code := listSpecies(parent, outw, log, &opts, cfg)
		return flush(outw, stderr, code)
	}

	if opts.OutFile == "" {
		code := runJobs(parent, outw, log, &opts, cfg)
		return flush(outw, stderr, code)
	}

	f, err := os.Create(opts.OutFile)
	if err != nil {
		logError(log, fcerr.Wrap(fcerr.IO, err, "create output"))
		return exitOutput
	}
	bw := bufio.NewWriter(f)
	code := runJobs(parent, bw, log, &opts, cfg)
	ferr := bw.Flush()
	if cerr := f.Close(); ferr == nil {
		ferr = cerr
	}
	if ferr != nil {
		logError(log, fcerr.Wrap(fcerr.IO, ferr, "write %s", opts.OutFile))
		return exitOutput
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadConfig layers defaults, the INI file and the header flags.
func loadConfig(o *cli.Options) (*config.Config, error) {
	path := o.ConfigFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// no home directory: run on defaults, nothing to save to
			return overrideConfig(config.Defaults(""), o), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fcerr.Wrap(fcerr.FileInvalid, err, "config").At(path, 0)
	}
	return overrideConfig(cfg, o), nil
}

func overrideConfig(cfg *config.Config, o *cli.Options) *config.Config {
	if o.HeaderFormat != "" {
		cfg.HeaderFormat = o.HeaderFormat
	}
	if o.IDRegex != "" {
		cfg.IDRegex = o.IDRegex
	}
	if o.SpeciesRegex != "" {
		cfg.SpeciesRegex = o.SpeciesRegex
	}
	return cfg
}

func logError(log logrus.FieldLogger, err error) {
	log.WithField("kind", fcerr.KindOf(err).String()).Error(err)
}
