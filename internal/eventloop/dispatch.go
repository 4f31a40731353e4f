package eventloop

import (
	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/filter"
	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/result"
)

// Dispatch applies one input action to State. It returns true when the
// action requests the program exit (Quit/Cancel).
//
// watch_pane_* navigation actions are intentionally not handled here:
// bubbles/viewport already owns the Watch pane's scroll offset and
// handles them directly (spec.md §4.7); Loop only tracks the History
// rail's SelectedIndex, which plain Up/Down/PageUp/PageDown and the
// history_pane_* variants both drive.
func (l *Loop) Dispatch(a keymap.Action) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch a {
	case keymap.Quit, keymap.Cancel:
		l.State.Quit = true
		return true

	case keymap.Reset:
		l.State.InputMode = InputNone
		l.State.ActiveWindow = WindowNormal

	case keymap.Help:
		if l.State.ActiveWindow == WindowHelp {
			l.State.ActiveWindow = WindowNormal
		} else {
			l.State.ActiveWindow = WindowHelp
		}

	case keymap.ToggleForcus:
		if l.State.ActiveArea == AreaWatch {
			l.State.ActiveArea = AreaHistory
		} else {
			l.State.ActiveArea = AreaWatch
		}
	case keymap.ForcusWatchPane:
		l.State.ActiveArea = AreaWatch
	case keymap.ForcusHistoryPane:
		l.State.ActiveArea = AreaHistory

	case keymap.ToggleColor:
		l.State.Color = !l.State.Color
	case keymap.ToggleLineNumber:
		l.State.LineNumber = !l.State.LineNumber
	case keymap.ToggleReverse:
		l.State.Reverse = !l.State.Reverse
	case keymap.ToggleMouseSupport:
		l.State.MouseEvents = !l.State.MouseEvents
	case keymap.ToggleBorder:
		l.State.Border = !l.State.Border
	case keymap.ToggleScrollBar:
		l.State.ScrollBar = !l.State.ScrollBar

	case keymap.ToggleViewPaneUI:
		// Header and history visibility move together (original_source's
		// show_ui(!show_header) sets both to the same new value).
		l.State.ShowHeader = !l.State.ShowHeader
		l.State.ShowHistory = l.State.ShowHeader
	case keymap.ToggleViewHeaderPane:
		l.State.ShowHeader = !l.State.ShowHeader
	case keymap.ToggleViewHistoryPane:
		l.State.ShowHistory = !l.State.ShowHistory

	case keymap.ToggleDiffMode:
		l.State.DiffMode = l.State.DiffMode.Cycle()
	case keymap.SetDiffModePlane:
		l.State.DiffMode = diffengine.ModeNone
	case keymap.SetDiffModeWatch:
		l.State.DiffMode = diffengine.ModeWatch
	case keymap.SetDiffModeLine:
		l.State.DiffMode = diffengine.ModeLine
	case keymap.SetDiffModeWord:
		l.State.DiffMode = diffengine.ModeWord
	case keymap.SetDiffOnly:
		l.State.OnlyDiffline = !l.State.OnlyDiffline

	case keymap.ToggleOutputMode:
		l.State.OutputView = nextView(l.State.OutputView)
	case keymap.SetOutputModeOutput:
		l.State.OutputView = result.ViewOutput
	case keymap.SetOutputModeStdout:
		l.State.OutputView = result.ViewStdout
	case keymap.SetOutputModeStderr:
		l.State.OutputView = result.ViewStderr

	case keymap.IntervalPlus:
		l.State.IntervalSeconds += 0.5
	case keymap.IntervalMinus:
		if l.State.IntervalSeconds > 0.5 {
			l.State.IntervalSeconds -= 0.5
		}

	case keymap.ChangeFilterMode:
		l.State.InputMode = InputFilter
	case keymap.ChangeRegexFilterMode:
		l.State.InputMode = InputRegexFilter

	case keymap.Up, keymap.HistoryPaneUp:
		l.moveSelection(-1)
	case keymap.Down, keymap.HistoryPaneDown:
		l.moveSelection(1)
	case keymap.PageUp, keymap.HistoryPanePageUp:
		l.moveSelection(-10)
	case keymap.PageDown, keymap.HistoryPanePageDown:
		l.moveSelection(10)
	case keymap.MoveTop, keymap.HistoryPaneMoveTop:
		l.State.SelectedIndex = 0
	case keymap.MoveEnd, keymap.HistoryPaneMoveEnd:
		l.State.SelectedIndex = -1 // renderer treats -1 as "latest"
	}
	return false
}

func nextView(v result.View) result.View {
	switch v {
	case result.ViewOutput:
		return result.ViewStdout
	case result.ViewStdout:
		return result.ViewStderr
	default:
		return result.ViewOutput
	}
}

// moveSelection shifts SelectedIndex by delta within the currently
// visible (filtered) history, clamped to bounds. Must be called with
// l.mu held.
func (l *Loop) moveSelection(delta int) {
	view := l.State.OutputView
	indices := filter.Visible(l.store.Indices(view), func(i int) string {
		r, _ := l.store.Get(view, i)
		return r.Body(view)
	}, l.State.Filter)
	if len(indices) == 0 {
		return
	}
	pos := 0
	for i, idx := range indices {
		if idx == l.State.SelectedIndex {
			pos = i
			break
		}
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(indices) {
		pos = len(indices) - 1
	}
	l.State.SelectedIndex = indices[pos]
}
