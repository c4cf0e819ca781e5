// Package logger configures the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	defaultLogger = discardLogger
)

// FilePath returns the log file location under $XDG_STATE_HOME.
func FilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "training", "training.log"), nil
}

// Init points the logger at the log file and, when verbose, stderr too.
// The returned function closes the log file and silences the logger.
func Init(stderr io.Writer, verbose bool) func() {
	var (
		writers []io.Writer
		f       *os.File
	)
	path, err := FilePath()
	if err == nil {
		if err = os.MkdirAll(filepath.Dir(path), 0o750); err == nil {
			if f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640); err == nil {
				writers = append(writers, f)
			}
		}
	}
	closeFn := func() {
		defaultLogger = discardLogger
		if f != nil {
			_ = f.Close()
		}
	}
	if err != nil && verbose {
		fmt.Fprintf(stderr, "  File logging disabled: %v\n", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
		writers = append(writers, stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return closeFn
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
