// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"path/filepath"
	"strings"

	"fastachar/internal/fcerr"
)

// BoolFlags returns names of flags that don't take a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals lets flags follow positionals on the command
// line. '-' is a positional (stdin), everything after '--' is positional.
// Call before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			posArgs = append(posArgs, argv[i+1:]...)
			return
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands globs among path positionals and drops repeats,
// keeping first-seen order. A glob that matches nothing is FileNotFound.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if p != "-" && seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fcerr.Wrap(fcerr.FileNotFound, err, "bad glob %q", a)
		}
		if len(m) == 0 {
			return nil, fcerr.New(fcerr.FileNotFound, "no input matched %q", a)
		}
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
