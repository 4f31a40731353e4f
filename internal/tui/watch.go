package tui

import (
	"strings"

	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/resultstore"
)

// watchContent renders the current DiffEngine output for the selected
// history entry against its immediate predecessor in the active view
// (spec.md §4.7: "displays the current DiffEngine output"). A selection of
// 0 (the sentinel row) or -1 shows the latest entry of the view.
// reverse=true reverses the line order prior to rendering.
func watchContent(st eventloop.State, store *resultstore.Store) string {
	view := st.OutputView
	selected := st.SelectedIndex
	if selected <= 0 {
		selected = store.Latest(view)
	}
	selected = store.Nearest(view, selected)
	prevIdx := store.Previous(view, selected)

	cur, _ := store.Get(view, selected)
	prev, _ := store.Get(view, prevIdx)

	out := diffengine.Render(st.DiffMode, prev.Body(view), cur.Body(view), st.DiffOptions())
	lines := out.PlainLines()
	if st.Reverse {
		lines = reverseLines(lines)
	}
	return strings.Join(lines, "\n")
}

func reverseLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = l
	}
	return out
}

// scrollbarThumb computes the thumb's [start,end) row range within a track
// of trackHeight rows, given the viewport's current scroll position,
// content height, and visible height (spec.md §4.7's thumb math).
func scrollbarThumb(trackHeight, contentLines, visibleHeight, position int) (start, end int) {
	if contentLines <= visibleHeight || trackHeight <= 0 {
		return 0, trackHeight
	}
	maxScroll := contentLines - visibleHeight
	if maxScroll <= 0 {
		return 0, trackHeight
	}
	thumbSize := trackHeight * visibleHeight / contentLines
	if thumbSize < 1 {
		thumbSize = 1
	}
	frac := float64(position) / float64(maxScroll)
	start = int(frac * float64(trackHeight-thumbSize))
	if start < 0 {
		start = 0
	}
	end = start + thumbSize
	if end > trackHeight {
		end = trackHeight
	}
	return start, end
}

func renderScrollbar(trackHeight, contentLines, visibleHeight, position int) string {
	start, end := scrollbarThumb(trackHeight, contentLines, visibleHeight, position)
	var b strings.Builder
	for i := 0; i < trackHeight; i++ {
		if i >= start && i < end {
			b.WriteString(scrollbarThumbStyle.Render("█"))
		} else {
			b.WriteString(" ")
		}
		if i < trackHeight-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
