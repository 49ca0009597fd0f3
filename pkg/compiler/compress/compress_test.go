package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestC0CollapsesWhitespace(t *testing.T) {
	got := C0([]string{"a   b\tc"})
	assert.Equal(t, []string{"a b c"}, got)
}

func TestC0DropsEmptyAndThematicBreaks(t *testing.T) {
	got := C0([]string{"a", "   ", "---", "b"})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestC0PreservesCodeBlockVerbatim(t *testing.T) {
	got := C0([]string{"<<<", "x   =   1", "---", ">>>"})
	assert.Equal(t, []string{"<<<", "x   =   1", "---", ">>>"}, got)
}

func TestC1SameAsC0(t *testing.T) {
	lines := []string{"a   b", "---"}
	assert.Equal(t, C0(lines), C1(lines))
}
