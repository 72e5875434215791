// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nt/internal/clock"
	"nt/internal/config"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app      *App
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	notePath string
}

// newHarness builds an App whose config points at a note file in a temp dir.
func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	root := t.TempDir()
	env := config.Env{
		HomeDir:   filepath.Join(root, "home"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}
	notePath := filepath.Join(root, "notes", "notes.txt")

	cfgPath, err := config.DefaultConfigPath(env)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	cfgData := fmt.Sprintf("note_file = %q\ndatetime_format = \"%%Y-%%m-%%d\"\n", notePath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o644))

	h := &harness{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		notePath: notePath,
	}
	h.app = &App{
		Env:    env,
		Stdin:  strings.NewReader(stdin),
		Stdout: h.stdout,
		Stderr: h.stderr,
		Clock:  clock.NewSequence("T1", "T2", "T3", "T4"),
	}
	return h
}

func (h *harness) run(args ...string) int {
	h.stdout.Reset()
	h.stderr.Reset()
	return h.app.Execute(args)
}

func (h *harness) noteFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.notePath)
	require.NoError(t, err)
	return string(data)
}

func (h *harness) noteFileExists() bool {
	_, err := os.Stat(h.notePath)
	return err == nil
}

func TestAppendText(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, exitOK, h.run("hello", "world"))
	assert.Equal(t, "added 1 note\n", h.stdout.String())
	assert.Equal(t, "T1 hello world\n", h.noteFile(t))
}

func TestTrailingArgsAreNoteText(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, exitOK, h.run("remember", "-p", "5"))
	assert.Equal(t, "T1 remember -p 5\n", h.noteFile(t))
}

func TestPrint(t *testing.T) {
	h := newHarness(t, "")
	for i := 1; i <= 12; i++ {
		require.Equal(t, exitOK, h.run(fmt.Sprintf("note %d", i)))
	}

	require.Equal(t, exitOK, h.run("-p"))
	lines := strings.Split(strings.TrimSuffix(h.stdout.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasSuffix(lines[0], "note 3"))
	assert.True(t, strings.HasSuffix(lines[9], "note 12"))

	require.Equal(t, exitOK, h.run("-p", "2"))
	assert.Equal(t, 2, strings.Count(h.stdout.String(), "\n"))
	assert.Contains(t, h.stdout.String(), "note 11")

	require.Equal(t, exitOK, h.run("--print=0"))
	assert.Empty(t, h.stdout.String())
}

func TestPrintHugeCount(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, exitOK, h.run("only", "note"))

	require.Equal(t, exitOK, h.run("-p", "1099511627776"))
	assert.Equal(t, "T1 only note\n", h.stdout.String())
}

func TestGroupedShortFlagsWithCount(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, exitOK, h.run("first"))
	require.Equal(t, exitOK, h.run("second"))

	require.Equal(t, exitOK, h.run("-vp", "1"))
	assert.Equal(t, "T2 second\n", h.stdout.String())
}

func TestPrintMissingFile(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, exitOK, h.run("--print"))
	assert.Equal(t, "no notes have been made\n", h.stdout.String())
	assert.False(t, h.noteFileExists())
}

func TestUsageConflicts(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "print with text", args: []string{"-p", "hello"}},
		{name: "interactive with print", args: []string{"-i", "-p"}},
		{name: "interactive with text", args: []string{"-i", "hello"}},
		{name: "config path with print", args: []string{"--config-path", "-p"}},
		{name: "config path with config file", args: []string{"--config-path", "--config-file", "other.toml"}},
		{name: "whitespace note", args: []string{" ", "  "}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			assert.Equal(t, exitUsage, h.run(tt.args...))
			assert.Contains(t, h.stderr.String(), "Error:")
			assert.False(t, h.noteFileExists())
		})
	}
}

func TestAppendFromStdin(t *testing.T) {
	h := newHarness(t, "line a\nline b\n\nline c\n  \n")

	require.Equal(t, exitOK, h.run())
	assert.Equal(t, "added 3 notes\n", h.stdout.String())
	assert.Equal(t, "T1 line a\nT2 line b\nT3 line c\n", h.noteFile(t))
}

func TestAppendFromStdinWhitespaceOnly(t *testing.T) {
	h := newHarness(t, "   \n\n")

	assert.Equal(t, exitUsage, h.run())
	assert.Contains(t, h.stderr.String(), "note text cannot be empty")
	assert.False(t, h.noteFileExists())
}

func TestInteractiveFromPipe(t *testing.T) {
	h := newHarness(t, "typed entry  \nignored\n")

	require.Equal(t, exitOK, h.run("-i"))
	assert.Equal(t, "added 1 note\n", h.stdout.String())
	assert.Equal(t, "T1 typed entry  \n", h.noteFile(t))
}

func TestInteractiveEmpty(t *testing.T) {
	h := newHarness(t, "   \n")

	assert.Equal(t, exitUsage, h.run("--interactive"))
	assert.Contains(t, h.stderr.String(), "no note text provided")
	assert.False(t, h.noteFileExists())
}

func TestNoArgsAtTerminalStartsPrompt(t *testing.T) {
	h := newHarness(t, "")
	h.app.StdinTTY = true
	h.app.StdoutTTY = true

	var prompted bool
	h.app.Prompt = func(in io.Reader, out io.Writer) (string, bool, error) {
		prompted = true
		return "from the prompt  ", true, nil
	}

	require.Equal(t, exitOK, h.run())
	assert.True(t, prompted)
	assert.Equal(t, "T1 from the prompt  \n", h.noteFile(t))
}

func TestPromptCancelled(t *testing.T) {
	h := newHarness(t, "")
	h.app.StdinTTY = true
	h.app.StdoutTTY = true
	h.app.Prompt = func(io.Reader, io.Writer) (string, bool, error) {
		return "", false, nil
	}

	assert.Equal(t, exitUsage, h.run())
	assert.False(t, h.noteFileExists())
}

func TestTerminalStdinWithoutPrompt(t *testing.T) {
	h := newHarness(t, "plain line\n")
	h.app.StdinTTY = true

	require.Equal(t, exitOK, h.run())
	assert.Equal(t, "T1 plain line\n", h.noteFile(t))
	assert.Equal(t, "added 1 note\n", h.stdout.String(), "no prompt marker when stdout is not a terminal")
}

func TestShowConfigPath(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, exitOK, h.run("--config-path"))
	out := h.stdout.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "nt.toml"))
}

func TestConfigFileFlag(t *testing.T) {
	h := newHarness(t, "")
	dir := t.TempDir()
	otherNotes := filepath.Join(dir, "other.txt")
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("note_file: "+otherNotes+"\n"), 0o644))

	require.Equal(t, exitOK, h.run("--config-file", cfgPath, "elsewhere"))
	require.Equal(t, exitOK, h.run("--config-file", cfgPath, "--print", "5"))
	assert.Equal(t, "T1 elsewhere\n", h.stdout.String())
	assert.False(t, h.noteFileExists())

	assert.Equal(t, exitIO, h.run("--config-file", filepath.Join(dir, "missing.toml"), "x"))
	assert.Contains(t, h.stderr.String(), "config load error")
}

func TestWriteFailureExitCode(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, os.MkdirAll(filepath.Dir(h.notePath), 0o755))
	require.NoError(t, os.Mkdir(h.notePath, 0o755))

	assert.Equal(t, exitIO, h.run("cannot", "write"))
	assert.Contains(t, h.stderr.String(), "write error")
}

func TestLogFileWritten(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, exitOK, h.run("logged"))

	data, err := os.ReadFile(filepath.Join(h.app.Env.StateDir, "nt", "nt.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Added notes")
}

func TestAddedMessage(t *testing.T) {
	assert.Equal(t, "added 1 note", addedMessage(1))
	assert.Equal(t, "added 2 notes", addedMessage(2))
}
