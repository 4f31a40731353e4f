// Package theme defines the color palette and base styles shared by the
// interactive renderer.
package theme

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme inspired by Catppuccin Mocha, trimmed to the
// colors the renderer actually uses (header/history chrome, borders,
// status, help overlay).
var (
	ColorBase     = lipgloss.Color("#1e1e2e")
	ColorSurface2 = lipgloss.Color("#585b70")
	ColorOverlay0 = lipgloss.Color("#6c7086")

	ColorRed      = lipgloss.Color("#f38ba8")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorMauve    = lipgloss.Color("#cba6f7")
	ColorLavender = lipgloss.Color("#b4befe")
)

// Status styles used by the header and history rail: a command's last
// exit status colors its command line and history row.
var (
	StatusSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StatusFailure = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StatusDim     = lipgloss.NewStyle().Foreground(ColorOverlay0)
)

// CommandStyle returns the style a command/title should render in given its
// exit status.
func CommandStyle(ok bool) lipgloss.Style {
	if ok {
		return StatusSuccess
	}
	return StatusFailure
}
