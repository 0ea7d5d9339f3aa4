// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"fastachar/internal/cliutil"
	"fastachar/internal/writers"
)

// Common holds the flags every run shares: output, config and logging.
type Common struct {
	// Input (positionals, expanded)
	Inputs []string

	// Output
	Output          string // text|json|jsonl|xlsx
	OutFile         string
	NoMatchExitCode int

	// Config
	ConfigFile string
	SaveConfig bool

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Output
	fs.StringVar(&c.Output, "output", writers.FormatText, "output: "+strings.Join(writers.Formats(), " | ")+" [text]")
	fs.StringVar(&c.Output, "o", writers.FormatText, "alias of --output")
	fs.StringVar(&c.OutFile, "out", "", "write the report to this file instead of stdout")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no column is reported [1]")

	// Config
	fs.StringVar(&c.ConfigFile, "config", "", "INI config file [~/.config/fastachar/fastacharrc]")
	fs.BoolVar(&c.SaveConfig, "save-config", false, "write the effective header regexes back to the config file [false]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "concurrent runs (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "log errors only [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "log debug detail [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals into Inputs, then runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	return Validate(c)
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	if !writers.Known(c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(writers.Formats(), " | "))
	}
	if c.Output == writers.FormatXLSX && c.OutFile == "" {
		return errors.New("--output xlsx needs --out FILE")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
