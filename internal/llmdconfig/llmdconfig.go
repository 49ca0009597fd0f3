// Package llmdconfig loads the JSON configuration document that overlays
// compiler defaults, resolving a project config file relative to a working
// directory.
package llmdconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stevenic/llmdc/pkg/compiler"
)

// File is the on-disk shape of llmdc.config.json. Every field mirrors a
// compiler.Options knob; a field's zero value falls back to
// compiler.DefaultOptions() the same way an absent dictionary policy field
// falls back to dict.DefaultPolicy().
type File struct {
	Compression      *int               `json:"compression"`
	ScopeMode        string             `json:"scope_mode"`
	KeepURLs         bool               `json:"keep_urls"`
	SentenceSplit    bool               `json:"sentence_split"`
	AnchorEvery      int                `json:"anchor_every"`
	BoolCompress     *bool              `json:"bool_compress"`
	MaxKVPerLine     int                `json:"max_kv_per_line"`
	PrefixExtraction *bool              `json:"prefix_extraction"`
	MinPrefixLen     int                `json:"min_prefix_len"`
	MinPrefixPct     float64            `json:"min_prefix_pct"`
	Stopwords        []string           `json:"stopwords"`
	ProtectWords     []string           `json:"protect_words"`
	PhraseMap        map[string]string `json:"phrase_map"`
	Units            map[string]string `json:"units"`
}

// Locate resolves the config path in auto-detection order: an explicit
// --config flag first, then "llmdc.config.json", then
// "config/llmdc.config.json", both relative to dir. It returns "" with a
// nil error when none exist, which callers treat as "use defaults".
func Locate(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, candidate := range []string{"llmdc.config.json", filepath.Join("config", "llmdc.config.json")} {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Load reads path (as returned by Locate) and merges it onto
// compiler.DefaultOptions(). An empty path returns the defaults unchanged.
func Load(path string) (compiler.Options, error) {
	opts := compiler.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return opts, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return Apply(opts, f), nil
}

// Apply overlays the fields f sets onto base and returns the result,
// leaving unset fields at base's value.
func Apply(base compiler.Options, f File) compiler.Options {
	if f.Compression != nil {
		base.Compression = *f.Compression
	}
	if f.ScopeMode != "" {
		base.ScopeMode = f.ScopeMode
	}
	base.KeepURLs = base.KeepURLs || f.KeepURLs
	base.SentenceSplit = base.SentenceSplit || f.SentenceSplit
	if f.AnchorEvery != 0 {
		base.AnchorEvery = f.AnchorEvery
	}
	if f.BoolCompress != nil {
		base.BoolCompress = *f.BoolCompress
	}
	if f.MaxKVPerLine != 0 {
		base.MaxKVPerLine = f.MaxKVPerLine
	}
	if f.PrefixExtraction != nil {
		base.PrefixExtraction = *f.PrefixExtraction
	}
	if f.MinPrefixLen != 0 {
		base.MinPrefixLen = f.MinPrefixLen
	}
	if f.MinPrefixPct != 0 {
		base.MinPrefixPct = f.MinPrefixPct
	}
	if len(f.Stopwords) > 0 {
		base.Stopwords = f.Stopwords
	}
	if len(f.ProtectWords) > 0 {
		base.ProtectWords = f.ProtectWords
	}
	if len(f.PhraseMap) > 0 {
		base.PhraseMap = f.PhraseMap
	}
	if len(f.Units) > 0 {
		base.Units = f.Units
	}
	return base
}
