// Package llmdlog provides the CLI's structured logging, layered on
// log/slog with a package-level default logger. pkg/compiler never imports
// this package; it only returns Diagnostic values for cmd/llmdc to log.
package llmdlog

import (
	"log/slog"
	"os"
)

var def = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init replaces the package-level default logger. cmd/llmdc calls this once
// at startup, based on the --verbose/--json-logs flags; nothing else in this
// module should construct its own logger.
func Init(verbose, json bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	def = slog.New(handler)
}

// Default returns the current package-level logger.
func Default() *slog.Logger {
	return def
}
