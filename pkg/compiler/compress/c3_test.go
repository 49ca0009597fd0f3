package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stevenic/llmdc/pkg/compiler/dict"
)

func baseDict() dict.Dictionary {
	return dict.Dictionary{Policy: dict.DefaultPolicy()}
}

func TestC3SubstitutesScopeName(t *testing.T) {
	d := baseDict()
	d.Maps.Scope = map[string]string{"introduction": "intro"}
	got := C3([]string{"@introduction"}, d)
	assert.Equal(t, []string{"@intro"}, got)
}

func TestC3SubstitutesKeyAndValue(t *testing.T) {
	d := baseDict()
	d.Maps.Key = map[string]string{"hostname": "host"}
	d.Maps.Value = map[string]string{"production": "prod"}
	got := C3([]string{":hostname=production"}, d)
	assert.Equal(t, []string{":host=prod"}, got)
}

func TestC3SubstitutesTypeTag(t *testing.T) {
	d := baseDict()
	d.Maps.Type = map[string]string{"python": "py"}
	got := C3([]string{"::python"}, d)
	assert.Equal(t, []string{"::py"}, got)
}

func TestC3SubstitutesTextTokens(t *testing.T) {
	d := baseDict()
	d.Maps.Text = map[string]string{"application": "app"}
	got := C3([]string{"run the application now"}, d)
	assert.Equal(t, []string{"run the app now"}, got)
}

func TestC3ProtectsDigitStartTokens(t *testing.T) {
	d := baseDict()
	d.Maps.Value = map[string]string{"8080": "x"}
	got := C3([]string{":port=8080"}, d)
	assert.Equal(t, []string{":port=8080"}, got)
}

func TestC3ProtectsNegationsWhenPolicyEnabled(t *testing.T) {
	d := baseDict()
	d.Maps.Text = map[string]string{"not": "nah"}
	d.Policy.Protect.Negations = true
	got := C3([]string{"do not stop"}, d)
	assert.Equal(t, []string{"do not stop"}, got)
}

func TestC3StopwordsDropTextTokens(t *testing.T) {
	d := baseDict()
	d.Stop = &dict.Stop{C3: []string{"the"}}
	got := C3([]string{"close the door"}, d)
	assert.Equal(t, []string{"close door"}, got)
}

func TestC3NeverTouchesCodeBlockContent(t *testing.T) {
	d := baseDict()
	d.Maps.Text = map[string]string{"application": "app"}
	got := C3([]string{"<<<", "the application", ">>>"}, d)
	assert.Equal(t, []string{"<<<", "the application", ">>>"}, got)
}

func TestC3SmartCaseMatchesRegardlessOfInputCase(t *testing.T) {
	d := baseDict()
	d.Maps.Text = map[string]string{"application": "app"}
	d.Policy.Case = "smart"
	got := C3([]string{"Application running"}, d)
	assert.Equal(t, []string{"app running"}, got)
}

func TestC3StopsEarlyWhenNoChangeAcrossPasses(t *testing.T) {
	d := baseDict()
	d.Policy.MaxPasses = 5
	got := C3([]string{"nothing to substitute here"}, d)
	assert.Equal(t, []string{"nothing to substitute here"}, got)
}
