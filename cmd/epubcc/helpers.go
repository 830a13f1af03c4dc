package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/maruwtc/epubcc"
	"github.com/maruwtc/epubcc/internal/config"
)

// newLogger builds a text logger on stderr at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newTranscoder builds the engine from config plus optional flag overrides.
func newTranscoder(cfg *config.Config, logger *slog.Logger, workers int, profile string) (*epubcc.Transcoder, error) {
	if workers == 0 {
		workers = cfg.Convert.Workers
	}
	if profile == "" {
		profile = cfg.Convert.Profile
	}
	opts := []epubcc.Option{
		epubcc.WithProfile(profile),
		epubcc.WithLogger(logger),
	}
	if workers > 0 {
		opts = append(opts, epubcc.WithWorkers(workers))
	}
	return epubcc.New(opts...)
}
