package epubcc

import "log/slog"

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithConverter replaces the default OpenCC converter.
func WithConverter(c Converter) Option {
	return func(t *Transcoder) {
		t.conv = c
	}
}

// WithProfile selects the OpenCC conversion profile (e.g. "s2t", "s2tw",
// "s2twp") used when no custom converter is set.
func WithProfile(profile string) Option {
	return func(t *Transcoder) {
		if profile != "" {
			t.profile = profile
		}
	}
}

// WithWorkers bounds how many entries (and archives) are transformed
// concurrently. Values below 1 fall back to 1.
func WithWorkers(n int) Option {
	return func(t *Transcoder) {
		t.workers = n
	}
}

// WithLogger attaches a structured logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transcoder) {
		if logger != nil {
			t.logger = logger
		}
	}
}
