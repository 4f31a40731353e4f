package tui

import (
	"fmt"
	"strings"

	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/resultstore"
	"github.com/hwatch-go/hwatch/internal/theme"
)

// renderHistory draws HistoryArea (spec.md §4.7): visible indices sorted
// descending with a pinned "latest" row on top, success/failure tinted,
// the selected row reverse-video.
func renderHistory(st eventloop.State, store *resultstore.Store, visible []int, width, height int) string {
	view := st.OutputView
	latestIdx := store.Latest(view)

	rows := make([]string, 0, len(visible))
	for i := len(visible) - 1; i >= 0; i-- {
		idx := visible[i]
		r, ok := store.Get(view, idx)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%4d", idx)
		if idx == latestIdx {
			label = " lat"
		}
		row := fmt.Sprintf("%s  %s", label, r.Timestamp)
		row = theme.CommandStyle(r.Status).Render(row)

		selected := idx == st.SelectedIndex || (st.SelectedIndex == -1 && idx == latestIdx)
		if selected {
			row = historySelectedStyle.Render(row)
		}
		rows = append(rows, row)
		if len(rows) >= height {
			break
		}
	}
	content := strings.Join(rows, "\n")
	if st.Border {
		return historyBorderStyle.Width(width).Height(height).Render(content)
	}
	return content
}
