// Package logging builds the application's structured logger. The TUI owns
// the terminal, so log lines are written as JSON to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options configures Setup.
type Options struct {
	// Level is one of debug, info, warn or error, case-insensitive.
	// Anything else falls back to info.
	Level string

	// File is the log destination. Empty discards all output.
	File string

	// SessionID is attached to every record.
	SessionID string
}

// ParseLevel maps a level name to a slog.Level. The bool is false when the
// name is not recognised and info was substituted.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup creates a JSON logger writing to opts.File. The returned closer
// must be closed on shutdown; it is a no-op for a discarding logger.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.File == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, opts.Level, opts.SessionID)
	return logger, f, nil
}

// New builds a JSON logger over w.
func New(w io.Writer, level, sessionID string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if sessionID != "" {
		logger = logger.With("session_id", sessionID)
	}
	if !ok && level != "" {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
