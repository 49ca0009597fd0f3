// Package compiler wires together the full Markdown-to-LLMD pipeline
// (normalize, block extraction, IR parsing, scope resolution and emission,
// compression, post-processing) and is the only package cmd/llmdc calls
// into. Library code here never logs or exits; it returns values and
// errors.
package compiler

import (
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/stevenic/llmdc/pkg/compiler/block"
	"github.com/stevenic/llmdc/pkg/compiler/compress"
	"github.com/stevenic/llmdc/pkg/compiler/dict"
	"github.com/stevenic/llmdc/pkg/compiler/emit"
	"github.com/stevenic/llmdc/pkg/compiler/ir"
	"github.com/stevenic/llmdc/pkg/compiler/normalize"
	"github.com/stevenic/llmdc/pkg/compiler/post"
)

// Options is the full set of compiler knobs, independent of how they were
// sourced (CLI flags, config file, or defaults).
type Options struct {
	Compression      int
	ScopeMode        string
	KeepURLs         bool
	SentenceSplit    bool
	AnchorEvery      int
	BoolCompress     bool
	MaxKVPerLine     int
	PrefixExtraction bool
	MinPrefixLen     int
	MinPrefixPct     float64
	Stopwords        []string
	ProtectWords     []string
	PhraseMap        map[string]string
	Units            map[string]string
	Dictionaries     []dict.Dictionary
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Compression:      2,
		ScopeMode:        "flat",
		MaxKVPerLine:     4,
		PrefixExtraction: true,
		MinPrefixLen:     6,
		MinPrefixPct:     0.6,
		BoolCompress:     true,
	}
}

// Diagnostic is a non-fatal condition surfaced during compilation. Fatal
// conditions (unreadable input, malformed config/dictionary JSON) are
// returned as plain errors instead.
type Diagnostic struct {
	Kind    string
	Message string
}

// Result is everything a caller needs after a successful compile.
type Result struct {
	Lines       []string
	Diagnostics []Diagnostic
	// Warnings renders every non-fatal Diagnostic as a single error, built
	// with hashicorp/go-multierror so the CLI can log one combined summary
	// instead of looping over Diagnostics itself. Nil when there were none.
	Warnings error
}

// Text joins Lines into the final "\n"-terminated LLMD document.
func (r Result) Text() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return strings.Join(r.Lines, "\n") + "\n"
}

// Compile runs the full pipeline over one or more source documents. Multiple
// sources are concatenated with a blank-line separator before normalization;
// there is no per-document isolation.
func Compile(sources []string, opts Options) (Result, error) {
	joined := strings.Join(sources, "\n\n")

	lines := normalize.Lines(joined)
	postBlock, blocks := block.Extract(lines)
	nodes := ir.Parse(postBlock)

	emitted, emitDiags := emit.Emit(nodes, blocks, emit.Options{
		ScopeMode:        emit.ParseScopeMode(opts.ScopeMode),
		Compression:      opts.Compression,
		KeepURLs:         opts.KeepURLs,
		SentenceSplit:    opts.SentenceSplit,
		MaxKVPerLine:     opts.MaxKVPerLine,
		PrefixExtraction: opts.PrefixExtraction,
		MinPrefixLen:     opts.MinPrefixLen,
		MinPrefixPct:     opts.MinPrefixPct,
		BoolCompress:     opts.BoolCompress,
	})

	compressed := runCompression(emitted, opts)

	warnings := post.Validate(compressed)
	compressed = post.ReAnchor(compressed, opts.AnchorEvery)

	var diags []Diagnostic
	var merr *multierror.Error
	for _, d := range emitDiags {
		diags = append(diags, Diagnostic{Kind: d.Kind, Message: d.Message})
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", d.Kind, d.Message))
	}
	for _, w := range warnings {
		diags = append(diags, Diagnostic{Kind: "InvalidScopeOrder", Message: w.Message})
		merr = multierror.Append(merr, fmt.Errorf("InvalidScopeOrder at line %d: %s", w.Line, w.Message))
	}

	return Result{Lines: compressed, Diagnostics: diags, Warnings: merr.ErrorOrNil()}, nil
}

func runCompression(lines []string, opts Options) []string {
	switch opts.Compression {
	case 0:
		return compress.C0(lines)
	case 1:
		return compress.C1(lines)
	case 2:
		lines = compress.C1(lines)
		return compress.C2(lines, compress.Options{
			PhraseMap:    opts.PhraseMap,
			Units:        opts.Units,
			Stopwords:    opts.Stopwords,
			ProtectWords: opts.ProtectWords,
		})
	case 3:
		lines = compress.C1(lines)
		lines = compress.C2(lines, compress.Options{
			PhraseMap:    opts.PhraseMap,
			Units:        opts.Units,
			Stopwords:    opts.Stopwords,
			ProtectWords: opts.ProtectWords,
		})
		return compress.C3(lines, dict.Merge(opts.Dictionaries))
	default:
		return compress.C0(lines)
	}
}
