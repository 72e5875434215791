// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dim grey
	submittedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)
