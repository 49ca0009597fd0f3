// Package cmd wires the llmdc command-line flags onto pkg/compiler.Compile.
// It contains no compiler logic of its own: every flag here is a direct
// transcription of a documented configuration knob, never a reinterpretation
// of one.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stevenic/llmdc/internal/llmdconfig"
	"github.com/stevenic/llmdc/internal/llmdlog"
	"github.com/stevenic/llmdc/pkg/compiler"
	"github.com/stevenic/llmdc/pkg/compiler/dict"
	"github.com/stevenic/llmdc/pkg/compiler/stats"
)

var (
	flagOutput        string
	flagCompression   int
	flagDicts         []string
	flagScopeMode     string
	flagKeepURLs      bool
	flagSentenceSplit bool
	flagAnchorEvery   int
	flagConfig        string
	flagVerbose       bool
	flagJSONLogs      bool
	flagStats         bool

	rootCmd = &cobra.Command{
		Use:           "llmdc [paths...]",
		Short:         "Compile Markdown into compact LLMD documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCompile,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write compiled output to this path instead of stdout")
	rootCmd.Flags().IntVarP(&flagCompression, "compression", "c", -1, "compression level 0-3 (overrides config; default from config or 2)")
	rootCmd.Flags().StringArrayVar(&flagDicts, "dict", nil, "dictionary JSON file to load for c3 substitution (repeatable)")
	rootCmd.Flags().StringVar(&flagScopeMode, "scope-mode", "", "scope naming mode: flat or concat (overrides config)")
	rootCmd.Flags().BoolVar(&flagKeepURLs, "keep-urls", false, "keep link/image URLs instead of dropping them at compression>=2")
	rootCmd.Flags().BoolVar(&flagSentenceSplit, "sentence-split", false, "emit one sentence per line")
	rootCmd.Flags().IntVar(&flagAnchorEvery, "anchor-every", 0, "re-emit the current scope anchor every N lines (0 disables)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to llmdc.config.json (overrides auto-detection)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "emit logs as JSON instead of text")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "log an approximate token count for the compiled output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCompile(cmd *cobra.Command, args []string) error {
	llmdlog.Init(flagVerbose, flagJSONLogs)
	logger := llmdlog.Default()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	configPath, err := llmdconfig.Locate(wd, flagConfig)
	if err != nil {
		return err
	}
	opts, err := llmdconfig.Load(configPath)
	if err != nil {
		return err
	}
	if configPath != "" {
		logger.Debug("loaded config", "path", configPath)
	}
	applyFlagOverrides(&opts)

	if len(flagDicts) > 0 {
		d, err := dict.Load(flagDicts)
		if err != nil {
			return fmt.Errorf("loading dictionaries: %w", err)
		}
		opts.Dictionaries = []dict.Dictionary{d}
	}

	files, err := collectInputFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no .md, .markdown, or .llmd files found in the given paths")
	}

	sources := make([]string, 0, len(files))
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		sources = append(sources, string(raw))
	}

	result, err := compiler.Compile(sources, opts)
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}
	for _, d := range result.Diagnostics {
		logger.Warn("diagnostic", "kind", d.Kind, "message", d.Message)
	}
	if flagStats {
		logger.Info("compiled output size", "approx_tokens", stats.ApproxTokens(result.Lines))
	}

	if flagOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), result.Text())
		return err
	}
	if err := os.WriteFile(flagOutput, []byte(result.Text()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}
	logger.Info("wrote output", "path", flagOutput, "lines", len(result.Lines))
	return nil
}

func applyFlagOverrides(opts *compiler.Options) {
	if flagCompression >= 0 {
		opts.Compression = flagCompression
	}
	if flagScopeMode != "" {
		opts.ScopeMode = flagScopeMode
	}
	if flagKeepURLs {
		opts.KeepURLs = true
	}
	if flagSentenceSplit {
		opts.SentenceSplit = true
	}
	if flagAnchorEvery > 0 {
		opts.AnchorEvery = flagAnchorEvery
	}
}

var inputExts = map[string]bool{".md": true, ".markdown": true, ".llmd": true}

// collectInputFiles walks every given path; files are taken as-is, and
// directories are walked recursively for .md/.markdown/.llmd files.
func collectInputFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if inputExts[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}
	return files, nil
}
