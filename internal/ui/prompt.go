// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui provides the terminal prompt used for interactive note entry.
package ui

import (
	"fmt"
	"io"

	"nt/internal/interactive"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptModel struct {
	input     textinput.Model
	keys      KeyMap
	submitted bool
	cancelled bool
}

func newPromptModel() promptModel {
	t := textinput.New()
	t.Prompt = interactive.PromptMarker
	t.PromptStyle = promptStyle
	t.Placeholder = "write a note, enter to save, esc to cancel"
	t.PlaceholderStyle = placeholderStyle
	t.Focus()
	return promptModel{input: t, keys: DefaultKeyMap}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	switch {
	case m.submitted:
		return promptStyle.Render(m.input.Prompt) + submittedStyle.Render(m.input.Value()) + "\n"
	case m.cancelled:
		return ""
	default:
		return m.input.View()
	}
}

// ReadLine shows a single-line prompt on out and waits for the user to submit
// or cancel. ok is false when the prompt was cancelled.
func ReadLine(in io.Reader, out io.Writer) (line string, ok bool, err error) {
	p := tea.NewProgram(newPromptModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("running prompt: %w", err)
	}

	m, isPrompt := final.(promptModel)
	if !isPrompt || !m.submitted {
		return "", false, nil
	}
	return m.input.Value(), true, nil
}
