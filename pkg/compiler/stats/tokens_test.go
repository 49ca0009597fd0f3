package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxTokensCountsWhitespaceSeparated(t *testing.T) {
	assert.Equal(t, 3, ApproxTokens([]string{"one two three"}))
}

func TestApproxTokensSplitsOnKVDelimiters(t *testing.T) {
	assert.Equal(t, 2, ApproxTokens([]string{":host=prod"}))
}

func TestApproxTokensSplitsOnColumnSeparator(t *testing.T) {
	assert.Equal(t, 3, ApproxTokens([]string{"a¦b¦c"}))
}

func TestApproxTokensSumsAcrossLines(t *testing.T) {
	assert.Equal(t, 5, ApproxTokens([]string{"a b c", "d e"}))
}

func TestApproxTokensEmptyInput(t *testing.T) {
	assert.Equal(t, 0, ApproxTokens(nil))
}
