package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNoWarningsWhenAnchored(t *testing.T) {
	warnings := Validate([]string{"@root", "text", ":k=v"})
	assert.Empty(t, warnings)
}

func TestValidateWarnsOnContentBeforeAnchor(t *testing.T) {
	warnings := Validate([]string{"text", "@root"})
	assert.Len(t, warnings, 1)
	assert.Equal(t, 0, warnings[0].Line)
}

func TestValidateIgnoresCodeBlockContent(t *testing.T) {
	warnings := Validate([]string{"@root", "<<<", "stray text", ">>>"})
	assert.Empty(t, warnings)
}

func TestValidateIgnoresCommentLines(t *testing.T) {
	warnings := Validate([]string{"~ a note", "@root"})
	assert.Empty(t, warnings)
}

func TestReAnchorInsertsScopeEveryNLines(t *testing.T) {
	got := ReAnchor([]string{"@root", "a", "b", "c"}, 2)
	assert.Equal(t, []string{"@root", "a", "b", "@root", "c"}, got)
}

func TestReAnchorNoopWhenDisabled(t *testing.T) {
	in := []string{"@root", "a", "b", "c"}
	got := ReAnchor(in, 0)
	assert.Equal(t, in, got)
}

func TestReAnchorUsesMostRecentScope(t *testing.T) {
	got := ReAnchor([]string{"@root", "a", "@child", "b", "c"}, 2)
	assert.Equal(t, []string{"@root", "a", "@child", "b", "c", "@child"}, got)
}
