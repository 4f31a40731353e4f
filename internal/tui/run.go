package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/keymap"
)

// Run launches the interactive program, blocking until the user quits.
func Run(loop *eventloop.Loop, km keymap.Map) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if loop.Snapshot().MouseEvents {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(loop, km), opts...)
	_, err := p.Run()
	return err
}
