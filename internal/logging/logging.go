// Package logging builds the game's file logger. The terminal belongs to the
// TUI, so log output goes to a rotated file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger is a charmbracelet logger bound to its file sink.
type Logger struct {
	*log.Logger
	sink io.Closer
}

// New opens (or creates) the log file and returns a logger writing to it.
func New(opts Options) (*Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("logging: no log file path")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", opts.Path, err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	return &Logger{Logger: newLogger(sink, level), sink: sink}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, log.FatalLevel)}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crush",
		Level:           level,
	})
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	return l.sink.Close()
}
