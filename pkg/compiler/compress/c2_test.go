package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestC2PhraseMap(t *testing.T) {
	got := C2([]string{"for example this works"}, Options{
		PhraseMap: map[string]string{"for example": "e.g."},
	})
	assert.Equal(t, []string{"e.g. this works"}, got)
}

func TestC2LongestFirstPhraseMatch(t *testing.T) {
	got := C2([]string{"new york city hall"}, Options{
		PhraseMap: map[string]string{"new york": "NY", "new york city": "NYC"},
	})
	assert.Equal(t, []string{"NYC hall"}, got)
}

func TestC2Units(t *testing.T) {
	got := C2([]string{"wait 5 seconds then 10 seconds"}, Options{
		Units: map[string]string{"seconds": "s"},
	})
	assert.Equal(t, []string{"wait 5s then 10s"}, got)
}

func TestC2StopwordsProtectedWordsKept(t *testing.T) {
	got := C2([]string{"you should not skip this"}, Options{
		Stopwords: []string{"you", "should", "not", "this"},
	})
	assert.Equal(t, []string{"should not skip"}, got)
}

func TestC2StopwordsCustomProtectOverridesRemoval(t *testing.T) {
	got := C2([]string{"the quick fox"}, Options{
		Stopwords:    []string{"the", "quick"},
		ProtectWords: []string{"quick"},
	})
	assert.Equal(t, []string{"quick fox"}, got)
}

func TestC2TrailingPeriodStripped(t *testing.T) {
	got := C2([]string{"a sentence."}, Options{})
	assert.Equal(t, []string{"a sentence"}, got)
}

func TestC2TrailingPeriodKeptForAbbreviations(t *testing.T) {
	for _, in := range []string{"see etc.", "e.g.", "wait...", "see i.e."} {
		got := C2([]string{in}, Options{})
		assert.Equal(t, []string{in}, got, "input %q", in)
	}
}

func TestC2SkipsScopeAndBlockTagLines(t *testing.T) {
	got := C2([]string{"@My Scope", "::py"}, Options{
		Stopwords: []string{"scope"},
	})
	assert.Equal(t, []string{"@My Scope", "::py"}, got)
}

func TestC2NeverTouchesCodeBlockContent(t *testing.T) {
	got := C2([]string{"<<<", "the the the", ">>>"}, Options{
		Stopwords: []string{"the"},
	})
	assert.Equal(t, []string{"<<<", "the the the", ">>>"}, got)
}
