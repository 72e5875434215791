// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"strings"

	"nt/internal/action"
	"nt/internal/config"
	"nt/internal/interactive"
	"nt/internal/logger"
	"nt/internal/notes"
)

var errNoNoteText = errors.New("no note text provided")

// run performs a resolved action.
func (a *App) run(act action.Action, opts *options) error {
	if act.Kind == action.ShowConfigPath {
		path, err := config.DefaultConfigPath(a.Env)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Stdout, path)
		return nil
	}

	cfg, err := a.loadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}
	logger.Debug("Loaded configuration", "note_file", cfg.NoteFilePath, "datetime_format", cfg.DatetimeFormat)

	switch act.Kind {
	case action.Append:
		if err := notes.Append(cfg.NoteFilePath, a.Clock, cfg.DatetimeFormat, act.Text); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
		a.reportAdded(1)

	case action.Print:
		return a.printNotes(cfg, act.Count)

	case action.AppendFromStdin:
		added, err := notes.AppendLines(a.Stdin, cfg.NoteFilePath, a.Clock, cfg.DatetimeFormat)
		if err != nil {
			if errors.Is(err, notes.ErrEmptyInput) {
				return usageError(err)
			}
			if added > 0 {
				logger.Warn("Stdin batch aborted", "added", added, "path", cfg.NoteFilePath)
			}
			return fmt.Errorf("write error: %w", err)
		}
		a.reportAdded(added)

	case action.InteractiveAppend:
		return a.runInteractive(cfg)

	default:
		return fmt.Errorf("internal error: unhandled action %s", act.Kind)
	}
	return nil
}

func (a *App) loadConfig(path string) (config.RuntimeConfig, error) {
	if path != "" {
		return config.LoadFrom(path, a.Env)
	}
	return config.Load(a.Env)
}

func (a *App) printNotes(cfg config.RuntimeConfig, count int) error {
	lines, found, err := notes.TailFileAllowMissing(cfg.NoteFilePath, count)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	if !found {
		fmt.Fprintln(a.Stdout, "no notes have been made")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(a.Stdout, line)
	}
	return nil
}

func (a *App) runInteractive(cfg config.RuntimeConfig) error {
	session := interactive.Session{
		In:       a.Stdin,
		Out:      a.Stdout,
		Prompt:   a.StdoutTTY,
		Clock:    a.Clock,
		Pattern:  cfg.DatetimeFormat,
		NotePath: cfg.NoteFilePath,
	}

	if a.Prompt != nil && a.StdinTTY && a.StdoutTTY {
		line, ok, err := a.Prompt(a.Stdin, a.Stdout)
		if err != nil {
			return fmt.Errorf("interactive error: %w", err)
		}
		if !ok {
			return usageError(errNoNoteText)
		}
		session.In = strings.NewReader(line + "\n")
		session.Prompt = false
	}

	outcome, err := session.Run()
	if err != nil {
		return fmt.Errorf("interactive error: %w", err)
	}
	if outcome.Empty() {
		return usageError(errNoNoteText)
	}
	a.reportAdded(outcome.Added)
	return nil
}

func (a *App) reportAdded(n int) {
	logger.Info("Added notes", "count", n)
	successColor.Fprintln(a.Stdout, addedMessage(n))
}

func addedMessage(n int) string {
	if n == 1 {
		return "added 1 note"
	}
	return fmt.Sprintf("added %d notes", n)
}
