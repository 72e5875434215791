// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package interactive runs the single-line note prompt.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nt/internal/clock"
	"nt/internal/notes"
)

// PromptMarker is written before reading when prompting is enabled.
const PromptMarker = "> "

// Outcome reports what a session did. Added is zero when nothing was
// submitted.
type Outcome struct {
	Added int
}

// Empty reports whether the session ended without a note.
func (o Outcome) Empty() bool {
	return o.Added == 0
}

// Session holds everything needed to turn one line of input into a note.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Prompt   bool
	Clock    clock.Clock
	Pattern  string
	NotePath string
}

// Run reads one line and appends it. An immediate EOF or a blank line leaves
// the note file untouched. The line is stored without further trimming
// beyond its line terminator.
func (s Session) Run() (Outcome, error) {
	if s.Prompt && s.Out != nil {
		if _, err := io.WriteString(s.Out, PromptMarker); err != nil {
			return Outcome{}, fmt.Errorf("writing prompt: %w", err)
		}
	}

	reader, ok := s.In.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(s.In)
	}
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return Outcome{}, fmt.Errorf("reading input: %w", err)
	}
	if line == "" {
		return Outcome{}, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return Outcome{}, nil
	}

	if err := notes.Append(s.NotePath, s.Clock, s.Pattern, line); err != nil {
		return Outcome{}, err
	}
	return Outcome{Added: 1}, nil
}
