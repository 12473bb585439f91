package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected clog.Level
	}{
		{"debug", clog.DebugLevel},
		{"DEBUG", clog.DebugLevel},
		{"info", clog.InfoLevel},
		{"warn", clog.WarnLevel},
		{"WARNING", clog.WarnLevel},
		{" error ", clog.ErrorLevel},
		{"unknown", clog.InfoLevel}, // Default
		{"", clog.InfoLevel},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  clog.DebugLevel,
		Output: &buf,
		Prefix: "test",
	})

	logger.Debug("state change", "from", "running", "to", "exiting")

	out := buf.String()
	if !strings.Contains(out, "state change") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "from=running") || !strings.Contains(out, "to=exiting") {
		t.Errorf("output missing fields: %q", out)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("output missing prefix: %q", out)
	}
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: clog.WarnLevel, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: clog.InfoLevel, Output: &buf}).With("run", "abc")

	logger.Info("started")
	if !strings.Contains(buf.String(), "run=abc") {
		t.Errorf("output missing inherited field: %q", buf.String())
	}
}

func TestDiscardLogger(t *testing.T) {
	// Must not panic or write anywhere visible.
	DiscardLogger().Error("nothing", "k", "v")
}

func TestOpenLogFile(t *testing.T) {
	w, err := OpenLogFile("")
	if err != nil {
		t.Fatalf("OpenLogFile(\"\") error: %v", err)
	}
	if _, err := io.WriteString(w, "dropped"); err != nil {
		t.Errorf("write to discard: %v", err)
	}
	w.Close()

	path := filepath.Join(t.TempDir(), "nested", "run.log")
	w, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile(%q) error: %v", path, err)
	}
	NewLogger(LoggerConfig{Level: clog.InfoLevel, Output: w}).Info("to file")
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content = %q", data)
	}
}
