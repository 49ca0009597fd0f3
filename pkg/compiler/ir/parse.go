package ir

import (
	"regexp"
	"strings"

	"github.com/stevenic/llmdc/pkg/compiler/block"
)

var (
	thematicBreakRe = regexp.MustCompile(`^[-*_]{3,}$`)
	atxHeadingRe    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	tableDelimRe    = regexp.MustCompile(`^\|?[\s:-]+\|`)
	unorderedRe     = regexp.MustCompile(`^(\s*)([-*+])\s+(.+)$`)
	orderedRe       = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.+)$`)
	kvRe            = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 _-]{0,63})\s*:\s+(.+)$`)
)

// Parse walks the line stream (placeholders already substituted in place of
// fenced blocks) and produces the IR node sequence. Classification is
// priority-ordered; the first matching rule wins.
func Parse(lines []string) []Node {
	var nodes []Node
	i := 0
	for i < len(lines) {
		line := lines[i]

		switch {
		case line == "":
			nodes = append(nodes, Node{Kind: Blank})
			i++

		case isThematicBreak(line):
			i++ // thematic breaks are skipped entirely, not emitted as a node

		case isBlockPlaceholder(line):
			idx, _ := block.ParsePlaceholder(line)
			nodes = append(nodes, NewBlockRef(idx))
			i++

		case atxHeadingRe.MatchString(line):
			m := atxHeadingRe.FindStringSubmatch(line)
			nodes = append(nodes, NewHeading(len(m[1]), m[2]))
			i++

		case isTableStart(lines, i):
			node, consumed := parseTable(lines, i)
			nodes = append(nodes, node)
			i += consumed

		case unorderedRe.MatchString(line):
			m := unorderedRe.FindStringSubmatch(line)
			nodes = append(nodes, NewListItem(indentDepth(m[1]), m[3], false))
			i++

		case orderedRe.MatchString(line):
			m := orderedRe.FindStringSubmatch(line)
			nodes = append(nodes, NewListItem(indentDepth(m[1]), m[3], true))
			i++

		case isKV(line):
			m := kvRe.FindStringSubmatch(line)
			nodes = append(nodes, NewKV(m[1], m[2]))
			i++

		default:
			text, consumed := absorbParagraph(lines, i)
			nodes = append(nodes, NewParagraph(text))
			i += consumed
		}
	}
	return nodes
}

func indentDepth(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 4
		} else {
			width++
		}
	}
	return width / 2
}

func isThematicBreak(line string) bool {
	stripped := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	return thematicBreakRe.MatchString(stripped)
}

func isBlockPlaceholder(line string) bool {
	_, ok := block.ParsePlaceholder(line)
	return ok
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isKV(line string) bool {
	if isURL(line) {
		return false
	}
	return kvRe.MatchString(line)
}

// isStructural reports whether line would terminate an in-progress paragraph:
// headings, either list form, a block placeholder, anything containing a
// pipe, or a valid (non-URL) key-value line.
func isStructural(line string) bool {
	if line == "" {
		return true
	}
	if isThematicBreak(line) {
		return true
	}
	if isBlockPlaceholder(line) {
		return true
	}
	if atxHeadingRe.MatchString(line) {
		return true
	}
	if unorderedRe.MatchString(line) || orderedRe.MatchString(line) {
		return true
	}
	if strings.Contains(line, "|") {
		return true
	}
	if isKV(line) {
		return true
	}
	return false
}

func absorbParagraph(lines []string, start int) (string, int) {
	parts := []string{lines[start]}
	i := start + 1
	for i < len(lines) && !isStructural(lines[i]) {
		parts = append(parts, lines[i])
		i++
	}
	return strings.Join(parts, " "), i - start
}

// isTableStart reports whether lines[i] opens a table: it contains a pipe
// and the following line is a delimiter row containing "---".
func isTableStart(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	return tableDelimRe.MatchString(next) && strings.Contains(next, "---")
}

func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// parseTable consumes the header row, the delimiter row, and all following
// rows that still contain a pipe and are non-empty. It returns the Table
// node and the number of lines consumed.
func parseTable(lines []string, start int) (Node, int) {
	header := splitCells(lines[start])
	rows := [][]string{header}
	i := start + 2 // header + delimiter
	for i < len(lines) {
		line := lines[i]
		if line == "" || !strings.Contains(line, "|") {
			break
		}
		rows = append(rows, splitCells(line))
		i++
	}
	return NewTable(rows), i - start
}
