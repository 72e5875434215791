// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Until Init is called every record is discarded, so library packages can
// log freely from tests.
var defaultLogger = slog.New(slog.DiscardHandler)

var logFile *os.File

// LogFilePath returns the application log file inside the given XDG state
// directory.
func LogFilePath(stateDir string) string {
	return filepath.Join(stateDir, "nt", "nt.log")
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile(path string) (*os.File, error) {
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	// 0640: user rw, group r, others ---
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
}

// Init configures the default logger. Records go to the log file under
// stateDir (when stateDir is non-empty and the file can be opened) and, in
// verbose mode, to stderr as well. Init may be called more than once; the
// previous log file is closed.
func Init(stateDir string, verbose bool, stderr io.Writer) {
	Close()

	var writers []io.Writer
	if stateDir != "" {
		file, err := openLogFile(LogFilePath(stateDir))
		if err != nil {
			if verbose {
				fmt.Fprintf(stderr, "File logging disabled: %v\n", err)
			}
		} else {
			logFile = file
			writers = append(writers, file)
		}
	}
	if verbose {
		writers = append(writers, stderr)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	switch len(writers) {
	case 0:
		defaultLogger = slog.New(slog.DiscardHandler)
		return
	case 1:
		defaultLogger = slog.New(slog.NewJSONHandler(writers[0], &slog.HandlerOptions{Level: level}))
	default:
		defaultLogger = slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level}))
	}
	Debug("Logging configured.", "file", LogFilePath(stateDir), "verbose", verbose)
}

// Close releases the log file, if one is open, and discards further records
// until the next Init.
func Close() {
	defaultLogger = slog.New(slog.DiscardHandler)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
