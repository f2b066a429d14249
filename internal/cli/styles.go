package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#58a6ff")
	colorMuted  = lipgloss.Color("#8b949e")
	colorPages  = lipgloss.Color("#3fb950")
	colorTime   = lipgloss.Color("#d29922")

	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	pagesStyle  = lipgloss.NewStyle().Foreground(colorPages)
	timeStyle   = lipgloss.NewStyle().Foreground(colorTime)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)
)
