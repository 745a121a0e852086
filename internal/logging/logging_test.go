package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Level(false))

	logger.Debug("hidden")
	logger.Info("round won", "score", 45)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, "round won") || !strings.Contains(out, "score=45") {
		t.Errorf("output = %q, expected info line with score", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("output = %q, expected prefix %q", out, Prefix)
	}
}

func TestLevel(t *testing.T) {
	if Level(true) != log.DebugLevel || Level(false) != log.InfoLevel {
		t.Error("unexpected level mapping")
	}
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bricks.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	New(f, log.InfoLevel).Info("hello")
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected hello", data)
	}
}
