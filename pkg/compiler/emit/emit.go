// Package emit implements scope resolution and structural emission: it
// walks the IR produced by package ir and the side table of extracted
// blocks, and produces the LLMD line sequence.
package emit

import (
	"strings"
	"unicode"

	"github.com/stevenic/llmdc/pkg/compiler/block"
	"github.com/stevenic/llmdc/pkg/compiler/ir"
)

// Options mirrors the subset of the config schema the emitter consumes.
type Options struct {
	ScopeMode        ScopeMode
	Compression      int
	KeepURLs         bool
	SentenceSplit    bool
	MaxKVPerLine     int
	PrefixExtraction bool
	MinPrefixLen     int
	MinPrefixPct     float64
	BoolCompress     bool
}

// Diagnostic is a non-fatal condition observed while emitting.
type Diagnostic struct {
	Kind    string
	Message string
}

// emitter holds the per-compilation state: heading stack, scope register,
// and key-value buffer. All state is created fresh per call to Emit and
// discarded on return.
type emitter struct {
	opts        Options
	scopes      *scopeStack
	lastScope   string
	scopeActive bool
	kvBuf       []KVPair
	lines       []string
	diags       []Diagnostic
}

// Emit walks nodes (and the side table of extracted blocks) and returns the
// LLMD line sequence plus any non-fatal diagnostics.
func Emit(nodes []ir.Node, blocks []block.Block, opts Options) ([]string, []Diagnostic) {
	e := &emitter{
		opts:   opts,
		scopes: newScopeStack(opts.ScopeMode, opts.Compression),
	}
	for _, n := range nodes {
		e.visit(n, blocks)
	}
	e.flushKV()
	return e.lines, e.diags
}

func (e *emitter) visit(n ir.Node, blocks []block.Block) {
	switch n.Kind {
	case ir.Blank:
		// Blank nodes carry no content; they neither flush the KV buffer nor
		// emit anything. Whitespace collapse (c0) removes any stray blank
		// lines that slip through regardless.

	case ir.Heading:
		e.flushKV()
		scope := e.scopes.push(n.Level, n.Text)
		e.emitScope(scope)

	case ir.KV:
		key := NormalizeKey(n.Key)
		if key == "" {
			e.flushKV()
			e.ensureScope()
			e.diags = append(e.diags, Diagnostic{Kind: "BadKvPair", Message: n.Key})
			e.lines = append(e.lines, BadKVFallback(n.Key, n.Value))
			return
		}
		e.kvBuf = append(e.kvBuf, KVPair{Key: key, Value: n.Value})

	case ir.Table:
		e.flushKV()
		e.ensureScope()
		e.emitTable(n)

	case ir.ListItem:
		e.flushKV()
		e.ensureScope()
		text := stripInline(n.Text, e.opts.KeepURLs, e.opts.Compression)
		dots := strings.Repeat("..", n.Depth)
		e.lines = append(e.lines, "-"+dots+text)

	case ir.BlockRef:
		e.flushKV()
		e.ensureScope()
		e.emitBlock(n, blocks)

	case ir.Paragraph:
		e.flushKV()
		e.ensureScope()
		text := stripInline(n.Text, e.opts.KeepURLs, e.opts.Compression)
		if e.opts.SentenceSplit && e.opts.Compression >= 2 {
			for _, s := range splitSentences(text) {
				e.lines = append(e.lines, s)
			}
		} else {
			e.lines = append(e.lines, text)
		}
	}
}

// ensureScope emits an implicit "@root" if no scope has been anchored yet,
// recovering from content that appears before any heading.
func (e *emitter) ensureScope() {
	if !e.scopeActive {
		e.emitScope("root")
	}
}

func (e *emitter) emitScope(scope string) {
	if e.scopeActive && scope == e.lastScope {
		return
	}
	e.lines = append(e.lines, "@"+scope)
	e.lastScope = scope
	e.scopeActive = true
}

// flushKV renders the buffered key-value pairs and resets the buffer. It is
// a no-op when the buffer is empty.
func (e *emitter) flushKV() {
	if len(e.kvBuf) == 0 {
		return
	}
	e.ensureScope()
	opts := PrefixOptions{
		Enabled: e.opts.PrefixExtraction,
		MinLen:  e.opts.MinPrefixLen,
		MinPct:  e.opts.MinPrefixPct,
	}
	e.lines = append(e.lines, FlushKV(e.kvBuf, e.opts.Compression, e.opts.MaxKVPerLine, opts)...)
	e.kvBuf = nil
}

func (e *emitter) emitTable(n ir.Node) {
	switch ClassifyTable(n.Rows) {
	case TableProperty:
		col, informative := PropertyColumn(n.Rows, e.opts.Compression)
		if informative {
			e.lines = append(e.lines, ":_col="+col)
		}
		for _, row := range n.Rows[1:] {
			key := NormalizeKey(row[0])
			if key == "" {
				e.diags = append(e.diags, Diagnostic{Kind: "BadKvPair", Message: row[0]})
				e.lines = append(e.lines, BadKVFallback(row[0], row[1]))
				continue
			}
			e.kvBuf = append(e.kvBuf, KVPair{Key: key, Value: row[1]})
		}
	case TableKeyedMulti:
		e.lines = append(e.lines, KeyedMultiLines(n.Rows, e.opts.BoolCompress, e.opts.Compression)...)
	default:
		e.lines = append(e.lines, RawTableLines(n.Rows)...)
	}
}

func (e *emitter) emitBlock(n ir.Node, blocks []block.Block) {
	if n.BlockIndex < 0 || n.BlockIndex >= len(blocks) {
		// Indices are assigned densely in source order by block extraction,
		// so this should never happen; treated as an internal error marker
		// rather than a panic, since the compiler never aborts mid-emit.
		e.diags = append(e.diags, Diagnostic{Kind: "UnknownBlockIndex", Message: "internal error"})
		return
	}
	b := blocks[n.BlockIndex]
	lang := b.Lang
	if lang == "" {
		lang = "code"
	}
	e.lines = append(e.lines, "::"+lang, "<<<")
	if b.Content != "" {
		e.lines = append(e.lines, strings.Split(b.Content, "\n")...)
	}
	e.lines = append(e.lines, ">>>")
}

// splitSentences splits prose on sentence boundaries: a [.!?] followed by
// whitespace and an uppercase letter. Go's RE2-based regexp package has no
// lookaround, so the boundary is found with a manual scan instead of a
// lookaround regex.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceEnd(runes[i]) {
			continue
		}
		j := i + 1
		sawSpace := false
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			sawSpace = true
			j++
		}
		if sawSpace && j < len(runes) && isUpper(runes[j]) {
			out = append(out, strings.TrimSpace(string(runes[start:i+1])))
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		out = append(out, strings.TrimSpace(string(runes[start:])))
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
