package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenic/llmdc/pkg/compiler/block"
	"github.com/stevenic/llmdc/pkg/compiler/ir"
)

func defaultOpts() Options {
	return Options{
		ScopeMode:        ScopeFlat,
		Compression:      1,
		MaxKVPerLine:     4,
		PrefixExtraction: true,
		MinPrefixLen:     6,
		MinPrefixPct:     0.6,
		BoolCompress:     true,
	}
}

func TestEmitImplicitRoot(t *testing.T) {
	lines, diags := Emit([]ir.Node{ir.NewParagraph("hi")}, nil, defaultOpts())
	assert.Equal(t, []string{"@root", "hi"}, lines)
	assert.Empty(t, diags)
}

func TestEmitBlockRefDefaultsToCodeLang(t *testing.T) {
	nodes := []ir.Node{ir.NewBlockRef(0)}
	blocks := []block.Block{{Index: 0, Lang: "", Content: "echo hi"}}
	lines, _ := Emit(nodes, blocks, defaultOpts())
	assert.Equal(t, []string{"@root", "::code", "<<<", "echo hi", ">>>"}, lines)
}

func TestEmitSentenceSplit(t *testing.T) {
	opts := defaultOpts()
	opts.Compression = 2
	opts.SentenceSplit = true
	nodes := []ir.Node{ir.NewParagraph("First sentence. Second sentence.")}
	lines, _ := Emit(nodes, nil, opts)
	require.Equal(t, []string{"@root", "First sentence.", "Second sentence."}, lines)
}

func TestEmitDeduplicatesRepeatedScope(t *testing.T) {
	nodes := []ir.Node{
		ir.NewHeading(1, "A"),
		ir.NewParagraph("one"),
		ir.NewHeading(1, "A"),
		ir.NewParagraph("two"),
	}
	lines, _ := Emit(nodes, nil, defaultOpts())
	assert.Equal(t, []string{"@A", "one", "two"}, lines)
}

func TestEmitKVBufferFlushesOnNonKVNode(t *testing.T) {
	nodes := []ir.Node{
		ir.NewKV("a", "1"),
		ir.NewKV("b", "2"),
		ir.NewParagraph("text"),
	}
	lines, _ := Emit(nodes, nil, defaultOpts())
	assert.Equal(t, []string{"@root", ":a=1 b=2", "text"}, lines)
}
