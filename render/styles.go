package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	freeStyle = cellStyle.
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Foreground(borderColor)

	okStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
