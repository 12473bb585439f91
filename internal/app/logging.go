package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level clog.Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
	// Timestamps enables the time column.
	Timestamps bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      clog.InfoLevel,
		Output:     os.Stderr,
		Prefix:     "tickloop",
		Timestamps: true,
	}
}

// ParseLogLevel parses a level name. Unknown names fall back to info.
func ParseLogLevel(s string) clog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := clog.ParseLevel(s)
	if err != nil {
		return clog.InfoLevel
	}
	return lvl
}

// NewLogger creates a leveled key/value logger.
func NewLogger(cfg LoggerConfig) *clog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return clog.NewWithOptions(cfg.Output, clog.Options{
		Level:           cfg.Level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.TimeOnly,
	})
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *clog.Logger {
	return clog.New(io.Discard)
}

// OpenLogFile opens path for appending, creating parent directories. An
// empty path yields io.Discard. The terminal is in raw mode while the loop
// runs, so logs must not go to the screen.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, WrapError(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, WrapError(err, "open log file %s", path)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
