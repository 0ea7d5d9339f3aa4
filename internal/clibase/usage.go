// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"fastachar/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections between the header and the shared blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – molecular diagnostic characters from aligned FASTA\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | xlsx [%s]\n", def("output"))
		fmt.Fprintln(out, "      --out file              Write the report to file (required for xlsx)")
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no column is reported [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nConfig:")
		fmt.Fprintln(out, "      --config file           INI config [~/.config/fastachar/fastacharrc]")
		fmt.Fprintf(out, "      --save-config           Store the effective header regexes [%s]\n", def("save-config"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Concurrent runs (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Log errors only [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log debug detail [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
