// Package block implements stage S1: lifting fenced code blocks out of the
// line stream into a side table, leaving a placeholder behind.
package block

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder brackets use mathematical white square brackets (U+27E6/U+27E7)
// precisely so they cannot collide with ordinary user text.
const (
	openBracket  = "⟦"
	closeBracket = "⟧"
)

var fenceOpenRe = regexp.MustCompile("^(`{3,})(\\w*)\\s*$")

// Block is one extracted fenced region, in source order.
type Block struct {
	Index   int
	Lang    string
	Content string
}

// Placeholder returns the line that replaces this block in the line stream.
func (b Block) Placeholder() string {
	return fmt.Sprintf("%sBLOCK:%d%s", openBracket, b.Index, closeBracket)
}

var placeholderRe = regexp.MustCompile(`^` + openBracket + `BLOCK:(\d+)` + closeBracket + `$`)

// ParsePlaceholder reports whether line is exactly a block placeholder, and
// if so, the referenced index.
func ParsePlaceholder(line string) (int, bool) {
	m := placeholderRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	var idx int
	fmt.Sscanf(m[1], "%d", &idx)
	return idx, true
}

// Extract scans lines for fenced code blocks and returns the line stream
// with each block replaced by a placeholder, plus the extracted blocks in
// source (and index) order. An unterminated fence at end-of-input is closed
// with whatever content was accumulated rather than treated as an error.
func Extract(lines []string) ([]string, []Block) {
	var out []string
	var blocks []Block

	i := 0
	for i < len(lines) {
		m := fenceOpenRe.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			i++
			continue
		}
		fence, lang := m[1], m[2]
		i++
		var content []string
		for i < len(lines) && strings.TrimRight(lines[i], " \t") != fence {
			content = append(content, lines[i])
			i++
		}
		if i < len(lines) {
			i++ // consume the closing fence
		}
		idx := len(blocks)
		b := Block{Index: idx, Lang: lang, Content: strings.Join(content, "\n")}
		blocks = append(blocks, b)
		out = append(out, b.Placeholder())
	}
	return out, blocks
}
