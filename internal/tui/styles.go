// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// TitleStyle is shared with the line shell when it runs on a terminal.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	helpStyle         = lipgloss.NewStyle().Foreground(colorSubtle)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(colorHighlight)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
	successStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	keyStyle          = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
)
