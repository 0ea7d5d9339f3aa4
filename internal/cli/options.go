// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"fastachar/internal/clibase"
	"fastachar/internal/cliutil"
	"fastachar/internal/report"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	// Selection of list A and list B
	ListA    string   // species regex, anchored at the start of the name
	ListB    string   // species regex; empty with no SpeciesB means "everything not in A"
	SpeciesA []string // explicit species names
	SpeciesB []string
	Exclude  string // regex removed from list A
	Invert   bool   // list A is everything ListA does not match

	Operation string
	Op        report.Operation

	// Header parsing; empty means the config value
	HeaderFormat string
	IDRegex      string
	SpeciesRegex string

	// Case files
	Cases    []string
	SaveCase string

	ListSpecies bool
}

// listValue appends comma separated values to a *[]string.
type listValue struct{ dst *[]string }

func (l *listValue) String() string {
	if l.dst == nil {
		return ""
	}
	return strings.Join(*l.dst, ",")
}

func (l *listValue) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*l.dst = append(*l.dst, p)
		}
	}
	return nil
}

// repeatValue appends each value verbatim (paths may hold commas).
type repeatValue struct{ dst *[]string }

func (r *repeatValue) String() string {
	if r.dst == nil {
		return ""
	}
	return strings.Join(*r.dst, " ")
}
func (r *repeatValue) Set(v string) error { *r.dst = append(*r.dst, v); return nil }

// NewFlagSet returns a FlagSet with the fastachar usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --list-a REGEX [--list-b REGEX] alignment.fas\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --case run1.case [--case run2.case ...]\n", name)

		_, _ = fmt.Fprintln(out, "\nSelection:")
		_, _ = fmt.Fprintln(out, "  -a, --list-a regex          Species of list A (matched at the start of the name)")
		_, _ = fmt.Fprintln(out, "  -b, --list-b regex          Species of list B [all species not in list A]")
		_, _ = fmt.Fprintln(out, "      --species-a names       Comma separated species of list A (repeatable)")
		_, _ = fmt.Fprintln(out, "      --species-b names       Comma separated species of list B (repeatable)")
		_, _ = fmt.Fprintln(out, "      --exclude regex         Drop matching species from list A")
		_, _ = fmt.Fprintf(out, "      --invert                List A is every species --list-a does not match [%s]\n", def("invert"))
		_, _ = fmt.Fprintf(out, "      --list-species          Print species and their IDs, then exit [%s]\n", def("list-species"))

		_, _ = fmt.Fprintln(out, "\nOperation:")
		_, _ = fmt.Fprintf(out, "  -m, --operation string      mdc | potential | nucs | diff | agree [%s]\n", def("operation"))

		_, _ = fmt.Fprintln(out, "\nHeaders:")
		_, _ = fmt.Fprintln(out, "      --header-format string  Header template with {ID} and {SPECIES} [config]")
		_, _ = fmt.Fprintln(out, "      --id-regex string       Regex for {ID} [config]")
		_, _ = fmt.Fprintln(out, "      --species-regex string  Regex for {SPECIES} [config]")

		_, _ = fmt.Fprintln(out, "\nCases:")
		_, _ = fmt.Fprintln(out, "      --case file             Run a saved case (repeatable; runs concurrently)")
		_, _ = fmt.Fprintln(out, "      --save-case file        Save this run as a case file")
	})
	return fs
}

// PrintExamples prints a short quickstart.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "fastachar", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "MDCs of one genus against the rest of the alignment:")
		_, _ = fmt.Fprintln(w, "  fastachar --list-a Lyrodus COI_sequences_MUSCLE.fas")
		_, _ = fmt.Fprintln(w, "\nPotential MDCs, two explicit lists, saved for later:")
		_, _ = fmt.Fprintln(w, "  fastachar -m potential \\")
		_, _ = fmt.Fprintln(w, "    --species-a Lyrodus_pedicellatus --species-b Teredo_navalis,Teredo_bartschi \\")
		_, _ = fmt.Fprintln(w, "    --save-case lyrodus.case COI_sequences_MUSCLE.fas")
		_, _ = fmt.Fprintln(w, "\nRe-run saved cases into one workbook:")
		_, _ = fmt.Fprintln(w, "  fastachar --case lyrodus.case --case teredo.case -o xlsx --out mdcs.xlsx")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.ListA, "list-a", "", "species regex of list A")
	fs.StringVar(&o.ListA, "a", "", "alias of --list-a")
	fs.StringVar(&o.ListB, "list-b", "", "species regex of list B [rest]")
	fs.StringVar(&o.ListB, "b", "", "alias of --list-b")
	fs.Var(&listValue{dst: &o.SpeciesA}, "species-a", "comma separated species of list A (repeatable)")
	fs.Var(&listValue{dst: &o.SpeciesB}, "species-b", "comma separated species of list B (repeatable)")
	fs.StringVar(&o.Exclude, "exclude", "", "regex of species dropped from list A")
	fs.BoolVar(&o.Invert, "invert", false, "invert the list A regex [false]")
	fs.BoolVar(&o.ListSpecies, "list-species", false, "print species and IDs, then exit [false]")

	fs.StringVar(&o.Operation, "operation", report.OpMDC.String(), "mdc | potential | nucs | diff | agree [mdc]")
	fs.StringVar(&o.Operation, "m", report.OpMDC.String(), "alias of --operation")

	fs.StringVar(&o.HeaderFormat, "header-format", "", "header template with {ID} and {SPECIES}")
	fs.StringVar(&o.IDRegex, "id-regex", "", "regex for {ID}")
	fs.StringVar(&o.SpeciesRegex, "species-regex", "", "regex for {SPECIES}")

	fs.Var(&repeatValue{dst: &o.Cases}, "case", "case file (repeatable)")
	fs.StringVar(&o.SaveCase, "save-case", "", "save this run as a case file")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if err := clibase.AfterParse(&o.Common, posArgs); err != nil {
		return o, err
	}
	return o, validate(&o)
}

func validate(o *Options) error {
	op, err := report.ParseOperation(o.Operation)
	if err != nil {
		return err
	}
	o.Op = op

	if len(o.Inputs) == 0 && len(o.Cases) == 0 {
		return errors.New("provide an alignment file or --case")
	}
	if o.ListSpecies {
		if len(o.Inputs) == 0 {
			return errors.New("--list-species needs an alignment file")
		}
		return nil
	}
	if o.SaveCase != "" && (len(o.Inputs) != 1 || len(o.Cases) > 0) {
		return errors.New("--save-case needs exactly one alignment file and no --case")
	}
	if len(o.Inputs) == 0 {
		return nil
	}

	switch {
	case o.ListA != "" && len(o.SpeciesA) > 0:
		return errors.New("--list-a conflicts with --species-a")
	case o.ListA == "" && len(o.SpeciesA) == 0:
		return errors.New("provide --list-a or --species-a")
	case o.ListB != "" && len(o.SpeciesB) > 0:
		return errors.New("--list-b conflicts with --species-b")
	case (o.Invert || o.Exclude != "") && o.ListA == "":
		return errors.New("--invert and --exclude need --list-a")
	}
	return nil
}
