package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log with helpers for import events
type Logger struct {
	*log.Logger
}

func newLogger(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// New creates an info-level logger writing to w
func New(w io.Writer) *Logger {
	return newLogger(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	return newLogger(w, level)
}

// NewFileLogger creates a logger appending to the file at path.
// The returned cleanup closes the file.
func NewFileLogger(path string) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return New(f), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ImportStarted logs the start of an archive import
func (l *Logger) ImportStarted(runID, archiveDir, contentDir string) {
	l.Info("import started",
		"run_id", runID,
		"archive_dir", archiveDir,
		"content_dir", contentDir)
}

// ImportCompleted logs the completion of an archive import
func (l *Logger) ImportCompleted(runID string, converted, skipped, errors int, duration time.Duration) {
	l.Info("import completed",
		"run_id", runID,
		"posts_converted", converted,
		"skipped", skipped,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// PostConverted logs a successfully converted post
func (l *Logger) PostConverted(source, dest, slug string) {
	l.Info("post converted",
		"source", source,
		"dest", dest,
		"slug", slug)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(archiveDir, contentDir string, interval time.Duration) {
	l.Debug("config loaded",
		"archive_dir", archiveDir,
		"content_dir", contentDir,
		"interval", interval)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
