// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package action turns already-parsed command-line input into exactly one
// note action. Resolution performs no I/O; the caller supplies the terminal
// status of stdin.
package action

import (
	"fmt"
	"strings"
)

// DefaultPrintCount is used when --print is given without a value.
const DefaultPrintCount = 10

// Kind identifies which action was resolved.
type Kind int

const (
	Append Kind = iota
	AppendFromStdin
	InteractiveAppend
	Print
	ShowConfigPath
)

func (k Kind) String() string {
	switch k {
	case Append:
		return "append"
	case AppendFromStdin:
		return "append-stdin"
	case InteractiveAppend:
		return "interactive"
	case Print:
		return "print"
	case ShowConfigPath:
		return "config-path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is the resolved command. Text is set only for Append, Count only
// for Print.
type Action struct {
	Kind  Kind
	Text  string
	Count int
}

// PrintOption mirrors --print: absent, given without a value, or given
// with an explicit count.
type PrintOption struct {
	Set   bool
	Count *int
}

// Request holds the raw invocation inputs.
type Request struct {
	Print           PrintOption
	Interactive     bool
	ShowConfigPath  bool
	ConfigFile      bool
	Note            []string
	StdinIsTerminal bool
}

// ErrorKind classifies resolution failures.
type ErrorKind int

const (
	KindConflict ErrorKind = iota
	KindEmpty
	KindInvalid
)

// UsageError is returned when the inputs do not describe a single valid
// action.
type UsageError struct {
	Kind    ErrorKind
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func conflict(msg string) error {
	return &UsageError{Kind: KindConflict, Message: msg}
}

// Resolve picks the action for req. Checks run in a fixed priority order:
// config path, interactive, print, then note text or stdin.
func Resolve(req Request) (Action, error) {
	hasNote := len(req.Note) > 0

	if req.ShowConfigPath {
		if req.Print.Set || req.Interactive || req.ConfigFile || hasNote {
			return Action{}, conflict("--config-path cannot be combined with other options or note text")
		}
		return Action{Kind: ShowConfigPath}, nil
	}

	if req.Interactive {
		if req.Print.Set {
			return Action{}, conflict("cannot mix --interactive with --print/-p")
		}
		if hasNote {
			return Action{}, conflict("cannot supply note text with --interactive")
		}
		return Action{Kind: InteractiveAppend}, nil
	}

	if req.Print.Set {
		if hasNote {
			return Action{}, conflict("cannot mix note text with --print/-p")
		}
		count := DefaultPrintCount
		if req.Print.Count != nil {
			count = *req.Print.Count
		}
		if count < 0 {
			return Action{}, &UsageError{Kind: KindInvalid, Message: fmt.Sprintf("invalid print count %d", count)}
		}
		return Action{Kind: Print, Count: count}, nil
	}

	if !hasNote {
		if req.StdinIsTerminal {
			return Action{Kind: InteractiveAppend}, nil
		}
		return Action{Kind: AppendFromStdin}, nil
	}

	text := strings.TrimSpace(strings.Join(req.Note, " "))
	if text == "" {
		return Action{}, &UsageError{Kind: KindEmpty, Message: "note text cannot be empty"}
	}
	return Action{Kind: Append, Text: text}, nil
}
