// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the note prompt.
type KeyMap struct {
	Submit key.Binding // Save the typed line
	Cancel key.Binding // Leave without saving
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save note"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "ctrl+d"),
		key.WithHelp("esc", "cancel"),
	),
}
