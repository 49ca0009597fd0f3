// Package stats provides a lightweight token-count proxy for measuring
// compression, exposed as a one-line compile-time diagnostic rather than a
// full benchmarking tool.
package stats

import "strings"

// ApproxTokens estimates a whitespace/punctuation-aware token count for a
// compiled LLMD document, good enough to compare before/after sizes at
// compile time. It is not a tokenizer for any specific model vocabulary.
func ApproxTokens(lines []string) int {
	count := 0
	for _, line := range lines {
		count += len(strings.FieldsFunc(line, isTokenBoundary))
	}
	return count
}

func isTokenBoundary(r rune) bool {
	switch {
	case r == ' ' || r == '\t':
		return true
	case r == '=' || r == ':' || r == '¦' || r == '|':
		return true
	}
	return false
}
