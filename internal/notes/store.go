// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package notes implements the append-only note file: one entry per line,
// formatted as "<timestamp> <text>\n".
package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nt/internal/clock"
	"nt/internal/logger"
)

// ErrEmptyInput is returned when a stdin batch contained no usable lines.
var ErrEmptyInput = errors.New("note text cannot be empty")

// WriteEntry writes a single entry to w.
func WriteEntry(w io.Writer, timestamp, text string) error {
	_, err := io.WriteString(w, timestamp+" "+text+"\n")
	return err
}

// AppendToFile appends one entry to the note file at path, creating the
// file and its parent directories when needed.
func AppendToFile(path, timestamp, text string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating note directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening note file %s: %w", path, err)
	}

	if err := WriteEntry(f, timestamp, text); err != nil {
		f.Close()
		return fmt.Errorf("writing note file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing note file %s: %w", path, err)
	}

	logger.Debug("Appended note", "path", path, "bytes", len(timestamp)+len(text)+2)
	return nil
}

// Append stamps text with the clock and appends it to path.
func Append(path string, c clock.Clock, pattern, text string) error {
	return AppendToFile(path, c.NowFormatted(pattern), text)
}

// AppendLines appends every non-blank line read from r as its own entry and
// returns how many were written. Each line gets its own timestamp. A
// trailing carriage return is dropped; other trailing whitespace is kept.
// The first write error stops the batch.
func AppendLines(r io.Reader, path string, c clock.Clock, pattern string) (int, error) {
	reader := bufio.NewReader(r)
	added := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return added, fmt.Errorf("reading stdin: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			if err := Append(path, c, pattern, line); err != nil {
				return added, err
			}
			added++
		}

		if readErr == io.EOF {
			break
		}
	}

	if added == 0 {
		return 0, ErrEmptyInput
	}
	return added, nil
}
