package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenic/llmdc/pkg/compiler"
)

func TestCollectInputFilesTakesExplicitFileAsIs(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	got, err := collectInputFiles([]string{f})
	require.NoError(t, err)
	assert.Equal(t, []string{f}, got)
}

func TestCollectInputFilesWalksDirectoryFilteringExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.markdown"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.llmd"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.txt"), []byte("x"), 0o644))

	got, err := collectInputFiles([]string{dir})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestApplyFlagOverridesOnlyAppliesSetValues(t *testing.T) {
	flagCompression = -1
	flagScopeMode = ""
	flagKeepURLs = false
	flagSentenceSplit = false
	flagAnchorEvery = 0

	opts := compiler.DefaultOptions()
	applyFlagOverrides(&opts)
	assert.Equal(t, compiler.DefaultOptions(), opts)

	flagCompression = 0
	flagScopeMode = "concat"
	applyFlagOverrides(&opts)
	assert.Equal(t, 0, opts.Compression)
	assert.Equal(t, "concat", opts.ScopeMode)
}
