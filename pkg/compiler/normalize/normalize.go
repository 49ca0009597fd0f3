// Package normalize implements stage S0 of the compile pipeline: Unicode
// normalization and line-ending unification.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Lines applies NFKC normalization to src, unifies line endings to "\n", and
// right-trims each resulting line. Leading whitespace is preserved since it
// encodes list depth in later stages.
func Lines(src string) []string {
	folded := norm.NFKC.String(src)
	folded = strings.ReplaceAll(folded, "\r\n", "\n")
	folded = strings.ReplaceAll(folded, "\r", "\n")

	raw := strings.Split(folded, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\f\v")
	}
	return lines
}
