// internal/compare/method.go
package compare

import (
	"strings"

	"fastachar/internal/fcerr"
)

// Method selects which columns ComputeMDCs considers.
type Method int

const (
	// MDC keeps columns where list A agrees internally.
	MDC Method = iota + 1
	// PotentialMDCOnly keeps columns where list A does not agree internally.
	PotentialMDCOnly
)

func (m Method) String() string {
	switch m {
	case MDC:
		return "MDC"
	case PotentialMDCOnly:
		return "potential_MDC_only"
	}
	return "invalid"
}

func (m Method) Valid() bool { return m == MDC || m == PotentialMDCOnly }

// ParseMethod accepts the canonical names case-insensitively plus the short
// form "potential".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mdc":
		return MDC, nil
	case "potential_mdc_only", "potential":
		return PotentialMDCOnly, nil
	}
	return 0, fcerr.New(fcerr.InvalidMethod, "invalid method %q: use MDC or potential_MDC_only", s)
}
