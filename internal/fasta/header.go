// internal/fasta/header.go
package fasta

import (
	"regexp"
	"strings"

	"fastachar/internal/fcerr"
)

const (
	PlaceholderID      = "{ID}"
	PlaceholderSpecies = "{SPECIES}"

	DefaultTemplate     = "{ID}[ _]{SPECIES}"
	DefaultIDRegex      = `[A-Za-z0-9\.]+`
	DefaultSpeciesRegex = `[A-Za-z_ ]+`
)

// HeaderFormat extracts (id, species) from a FASTA header. The template holds
// the literal placeholders {ID} and {SPECIES}; whatever else it contains is
// the separator regex. Without {ID} every parsed ID is empty and the loader
// numbers the records instead.
type HeaderFormat struct {
	Template     string
	IDRegex      string
	SpeciesRegex string

	header  *regexp.Regexp
	idSep   *regexp.Regexp
	sep     *regexp.Regexp
	idFirst bool
}

// DefaultHeaderFormat parses headers like ">WBET042_Lyrodus_pedicellatus".
func DefaultHeaderFormat() *HeaderFormat {
	h, err := NewHeaderFormat(DefaultTemplate, DefaultIDRegex, DefaultSpeciesRegex)
	if err != nil {
		panic(err)
	}
	return h
}

func NewHeaderFormat(template, idRegex, speciesRegex string) (*HeaderFormat, error) {
	h := &HeaderFormat{Template: template, IDRegex: idRegex, SpeciesRegex: speciesRegex}
	if !strings.Contains(template, PlaceholderID) {
		template += PlaceholderID
		idRegex = ""
	}
	sep := strings.NewReplacer(PlaceholderID, "", PlaceholderSpecies, "").Replace(template)
	full := strings.NewReplacer(PlaceholderID, "(?:"+idRegex+")", PlaceholderSpecies, "(?:"+speciesRegex+")").Replace(template)

	var err error
	if h.header, err = regexp.Compile("^(?:" + full + ")"); err != nil {
		return nil, fcerr.Wrap(fcerr.InvalidHeader, err, "bad header format %q", h.Template)
	}
	if h.sep, err = regexp.Compile(sep); err != nil {
		return nil, fcerr.Wrap(fcerr.InvalidHeader, err, "bad separator %q", sep)
	}
	h.idFirst = strings.Index(template, PlaceholderID) < strings.Index(template, PlaceholderSpecies)
	if h.idFirst {
		h.idSep, err = regexp.Compile("^(" + idRegex + ")(?:" + sep + ")")
	} else {
		h.idSep, err = regexp.Compile("(?:" + sep + ")(" + idRegex + ")")
	}
	if err != nil {
		return nil, fcerr.Wrap(fcerr.InvalidHeader, err, "bad ID regex %q", idRegex)
	}
	return h, nil
}

// HasID reports whether the template carries an {ID} placeholder.
func (h *HeaderFormat) HasID() bool { return strings.Contains(h.Template, PlaceholderID) }

// Parse splits a header line (with or without the leading '>').
func (h *HeaderFormat) Parse(hdr string) (id, species string, err error) {
	s := strings.TrimSpace(strings.TrimPrefix(hdr, ">"))
	if s == "" {
		return "", "", fcerr.New(fcerr.InvalidHeader, "empty header")
	}
	if !h.header.MatchString(s) {
		return "", "", fcerr.New(fcerr.InvalidHeader,
			"header %q does not match format %q (pattern %s)", s, h.Template, h.header.String())
	}
	sepLoc := h.sep.FindStringIndex(s)
	if sepLoc == nil {
		return "", "", fcerr.New(fcerr.InvalidHeader, "header %q has no separator matching %q", s, h.sep.String())
	}

	if m := h.idSep.FindStringSubmatchIndex(s); m != nil {
		id = s[m[2]:m[3]]
		species = s[:m[0]] + s[m[1]:]
		return id, species, nil
	}

	// The ID+separator pattern failed although the whole header matched:
	// split on the first separator and assign by placeholder order.
	left, right := s[:sepLoc[0]], s[sepLoc[1]:]
	if h.idFirst {
		return left, right, nil
	}
	return right, left, nil
}
