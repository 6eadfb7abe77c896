package main

import (
	"io"
	"log/slog"
	"os"
)

// log discards everything until initLogger enables output.
var log *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogger routes logs to stderr when verbose mode is on. Call from the
// root command before any log calls.
func initLogger(verbose bool) {
	if !verbose {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
