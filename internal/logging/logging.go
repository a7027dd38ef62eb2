// Package logging builds the zerolog logger used by the CLI and bridges it
// into the SDK's optional Logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// New creates a logger writing to w at the given level. Terminals get the
// human readable console format, everything else JSON lines.
func New(w io.Writer, level string) zerolog.Logger {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Open creates a logger writing to logFile, or to stderr when logFile is
// empty. The returned closer releases the file.
func Open(logFile, level string) (zerolog.Logger, io.Closer, error) {
	if logFile == "" {
		return New(os.Stderr, level), nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return New(os.Stderr, level), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SDKAdapter satisfies rdio.Logger by writing debug events to a zerolog
// logger.
type SDKAdapter struct {
	Logger zerolog.Logger
}

// Debugf implements rdio.Logger.
func (a SDKAdapter) Debugf(format string, args ...interface{}) {
	a.Logger.Debug().Str("component", "rdio").Msgf(format, args...)
}
