package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/theme"
)

// renderHelp draws a static overlay listing the active keymap's bindings,
// generated straight from the live table so it can never drift from actual
// dispatch (SPEC_FULL.md §10, grounded on original_source/src/help.rs's
// "help text is derived from the live keymap").
func renderHelp(km keymap.Map, width int) string {
	type row struct {
		key    string
		action string
	}
	rows := make([]row, 0, len(km))
	for k, a := range km {
		rows = append(rows, row{key: k.String(), action: string(a)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].action != rows[j].action {
			return rows[i].action < rows[j].action
		}
		return rows[i].key < rows[j].key
	})

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keymap") + "\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Render(r.key), r.action))
	}
	b.WriteString("\n" + helpTitleStyle.Render("press h to close"))
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorSurface2).
		Render(b.String())
}
