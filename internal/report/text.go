// internal/report/text.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fastachar/internal/alignment"
	"fastachar/internal/state"
)

const (
	nameA = "List A"
	nameB = "List B"
)

var (
	rule   = strings.Repeat("-", 80)
	footer = strings.Repeat("=", 80)
)

// WriteText renders r in the plain-text report layout: header with both
// lists, the operation's table, a summary and a footer rule.
func WriteText(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, r)
	switch r.Operation {
	case OpMDC, OpPotential:
		writeMDCs(bw, r)
	case OpNucs:
		writeNucs(bw, r)
	case OpDiff, OpAgree:
		writeColumns(bw, r)
	}
	fmt.Fprintf(bw, "\n%s\n\n", footer)
	return bw.Flush()
}

func writeMembers(w io.Writer, title string, seqs []*alignment.Sequence) {
	fmt.Fprintf(w, "%s:\n", title)
	for i, s := range seqs {
		fmt.Fprintf(w, "%2d %s (%s)\n", i+1, s.Species, s.ID)
	}
}

func writeHeader(w io.Writer, r *Result) {
	fmt.Fprintf(w, "Filename : %s\n", r.Filename)
	if r.Case != "" {
		fmt.Fprintf(w, "Case     : %s\n", r.Case)
	}
	fmt.Fprintln(w, rule)
	writeMembers(w, nameA, r.SetA)
	fmt.Fprintln(w)
	writeMembers(w, nameB, r.SetB)
	fmt.Fprintln(w, rule)
	fmt.Fprint(w, "\n\n")
}

func percent(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b) * 100
}

// digits labels n columns 1..9,0,1,... separated by spaces.
func digits(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprint((i + 1) % 10)
	}
	return strings.Join(parts, " ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// firstSymbol is the symbol shown for an agreeing list A column: the first
// unmasked contributor.
func firstSymbol(cs state.ColumnState) byte {
	for _, c := range cs.Symbols() {
		if c != state.Blank {
			return c
		}
	}
	return state.Blank
}

func writeMDCs(w io.Writer, r *Result) {
	if len(r.MDCs) == 0 {
		fmt.Fprintf(w, "%s has no MDCs\n", nameA)
		return
	}
	potential := r.Operation == OpPotential
	nA := r.MDCs[0].A.Contributors()
	marker := 24
	filling, modifier := "", ""
	if potential {
		if m := 10 + 2*nA; m > marker {
			marker = m
		}
		filling = strings.Repeat(" ", marker-23)
		modifier = "potential "
	}

	fmt.Fprintf(w, "The species in %s have the following %sMDCs:\n\n", nameA, modifier)
	fmt.Fprintf(w, "position: character(s) %s|  characters for species in %s\n", filling, nameB)
	if potential {
		fmt.Fprintf(w, "%s|  ", pad("          "+digits(nA), marker))
	} else {
		fmt.Fprintf(w, "%23s|  ", "")
	}
	fmt.Fprintf(w, "%s \n", digits(len(r.SetB)))
	fmt.Fprintln(w, rule)

	for _, d := range r.MDCs {
		if potential {
			fmt.Fprintf(w, "%s|  ", pad(fmt.Sprintf("%8d: %s", d.Index+1, d.A.Joined(" ")), marker))
		} else {
			fmt.Fprintf(w, "%8d: %c            |  ", d.Index+1, firstSymbol(d.A))
		}
		fmt.Fprintln(w, d.B.Joined(" "))
	}
	if !potential {
		fmt.Fprintf(w, "\n%d of %d characters are unique (%.1f%%)", len(r.MDCs), r.Length, percent(len(r.MDCs), r.Length))
	}
}

func writeNucs(w io.Writer, r *Result) {
	if len(r.NonUnique) == 0 {
		fmt.Fprintf(w, "All sequences within %s are identical.\n", nameA)
		return
	}
	fmt.Fprintf(w, "The sequences of species in %s have the following non-unique characters on\npositions:\n\n", nameA)
	fmt.Fprintln(w, "position:  chars")
	fmt.Fprintln(w, rule)
	resolvable := 0
	for _, nu := range r.NonUnique {
		prefix := ' '
		if nu.Resolvable {
			prefix = '*'
			resolvable++
		}
		fmt.Fprintf(w, "%c%5d %s\n", prefix, nu.Index+1, nu.State.Joined(" "))
	}
	a := len(r.NonUnique)
	fmt.Fprintln(w)
	fmt.Fprint(w, "\nSummary:")
	fmt.Fprintf(w, "\n\t- %d of %d characters are different (%.1f%% identical).", a, r.Length, percent(r.Length-a, r.Length))
	if resolvable > 0 {
		fmt.Fprintf(w, "\n\n\t - A number of %d instances (marked by *) were found \n\t  that *could* be potential unique.\n", resolvable)
	}
}

func writeColumns(w io.Writer, r *Result) {
	verb := "differ"
	if r.Operation == OpAgree {
		verb = "agree"
	}
	if len(r.Columns) == 0 {
		fmt.Fprintf(w, "The sequences within %s %s on no position.\n", nameA, verb)
		return
	}
	fmt.Fprintf(w, "The sequences of species in %s %s on the following positions:\n\n", nameA, verb)
	fmt.Fprintln(w, "position:  chars")
	fmt.Fprintln(w, rule)
	for _, c := range r.Columns {
		fmt.Fprintf(w, " %5d %s\n", c.Index+1, c.State.Joined(" "))
	}
	a := len(r.Columns)
	fmt.Fprintf(w, "\nSummary:\n\t- %d of %d characters (%.1f%%).\n", a, r.Length, percent(a, r.Length))
}
