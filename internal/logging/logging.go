// Package logging builds the structured logger shared by the frontends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "bricks"

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// Level returns the level for the --debug flag.
func Level(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// DefaultLogPath returns ~/.bricks/bricks.log, or bricks.log in the working
// directory when the home directory is unknown.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bricks.log"
	}
	return filepath.Join(home, ".bricks", "bricks.log")
}

// OpenFile opens path for appending, creating parent directories.
// The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return f, nil
}
