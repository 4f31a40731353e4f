package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hwatch-go/hwatch/internal/theme"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorBase).
			Background(theme.ColorBlue).
			Padding(0, 1)

	flagOnStyle  = lipgloss.NewStyle().Foreground(theme.ColorGreen).Bold(true)
	flagOffStyle = lipgloss.NewStyle().Foreground(theme.ColorOverlay0)

	watchBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorSurface2)

	historyBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorSurface2)

	historySelectedStyle = lipgloss.NewStyle().Reverse(true)

	filterPromptStyle = lipgloss.NewStyle().Foreground(theme.ColorMauve)

	helpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorLavender)
	helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorYellow)

	scrollbarThumbStyle = lipgloss.NewStyle().Foreground(theme.ColorOverlay0)
)
