package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeUnionsNamespacesFirstWriterWins(t *testing.T) {
	a := Dictionary{Maps: Maps{Scope: map[string]string{"intro": "i"}}}
	b := Dictionary{Maps: Maps{Scope: map[string]string{"intro": "x", "outro": "o"}}}
	merged := Merge([]Dictionary{a, b})
	assert.Equal(t, "i", merged.Maps.Scope["intro"])
	assert.Equal(t, "o", merged.Maps.Scope["outro"])
}

func TestMergeDefaultsPolicyWhenUnset(t *testing.T) {
	merged := Merge(nil)
	assert.Equal(t, DefaultPolicy(), merged.Policy)
}

func TestMergeTakesFirstNonZeroPolicy(t *testing.T) {
	a := Dictionary{Policy: Policy{Case: "preserve", MaxPasses: 3}}
	b := Dictionary{Policy: Policy{Case: "smart", MaxPasses: 1}}
	merged := Merge([]Dictionary{a, b})
	assert.Equal(t, "preserve", merged.Policy.Case)
	assert.Equal(t, 3, merged.Policy.MaxPasses)
}

func TestMergeCombinesStopLists(t *testing.T) {
	a := Dictionary{Stop: &Stop{C3: []string{"x"}}}
	b := Dictionary{Stop: &Stop{C3: []string{"x", "y"}}}
	merged := Merge([]Dictionary{a, b})
	assert.Equal(t, []string{"x", "y"}, merged.Stop.C3)
}
