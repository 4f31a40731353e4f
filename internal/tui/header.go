package tui

import (
	"fmt"
	"strings"

	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/result"
	"github.com/hwatch-go/hwatch/internal/theme"
)

// renderHeader draws HeaderArea's two lines (spec.md §4.7): interval (or
// "Paused"), command colored by success, timestamp, filter prompt, then a
// row of status flags.
func renderHeader(st eventloop.State, latest result.CommandResult, width int) string {
	interval := fmt.Sprintf("Every %.1fs", st.IntervalSeconds)
	if st.Paused {
		interval = "Paused"
	}

	cmd := theme.CommandStyle(latest.Status).Render(latest.Command)
	line1 := headerStyle.Width(width).Render(fmt.Sprintf(" %s : %s", interval, cmd))

	var line2 strings.Builder
	line2.WriteString(" " + latest.Timestamp)
	if st.InputMode != eventloop.InputNone {
		prompt := "filter"
		if st.InputMode == eventloop.InputRegexFilter {
			prompt = "regex"
		}
		line2.WriteString("  " + filterPromptStyle.Render(prompt+": ") + st.Filter.Text())
	} else if st.Filter.Active() {
		line2.WriteString("  " + filterPromptStyle.Render("filter: ") + st.Filter.Text())
	}
	line2.WriteString("  " + renderFlags(st))

	return line1 + "\n" + line2.String()
}

func renderFlags(st eventloop.State) string {
	flag := func(name string, on bool) string {
		if on {
			return flagOnStyle.Render(name)
		}
		return flagOffStyle.Render(name)
	}
	parts := []string{
		flag("Number", st.LineNumber),
		flag("Color", st.Color),
		flag("Reverse", st.Reverse),
		flagOnStyle.Render(st.OutputView.String()),
		flagOnStyle.Render(areaLabel(st.ActiveArea)),
		flagOnStyle.Render(st.DiffMode.String()),
	}
	return strings.Join(parts, " | ")
}

func areaLabel(a eventloop.Area) string {
	if a == eventloop.AreaHistory {
		return "history"
	}
	return "watch"
}
