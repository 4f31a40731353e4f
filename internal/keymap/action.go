// Package keymap maps key-syntax tokens to Actions, parses INI-style
// "key=action" config lines, and carries the default bindings (spec.md
// §6), ported from the original implementation's keymap.
package keymap

// Action is one input action the EventLoop dispatches on. The token set is
// the exact string form accepted in "key=action" config lines.
type Action string

const (
	Up     Action = "up"
	Down   Action = "down"
	PageUp Action = "page_up"
	PageDown Action = "page_down"
	MoveTop  Action = "move_top"
	MoveEnd  Action = "move_end"

	WatchPaneUp       Action = "watch_pane_up"
	WatchPaneDown     Action = "watch_pane_down"
	WatchPanePageUp   Action = "watch_pane_page_up"
	WatchPanePageDown Action = "watch_pane_page_down"
	WatchPaneMoveTop  Action = "watch_pane_move_top"
	WatchPaneMoveEnd  Action = "watch_pane_move_end"

	HistoryPaneUp       Action = "history_pane_up"
	HistoryPaneDown     Action = "history_pane_down"
	HistoryPanePageUp   Action = "history_pane_page_up"
	HistoryPanePageDown Action = "history_pane_page_down"
	HistoryPaneMoveTop  Action = "history_pane_move_top"
	HistoryPaneMoveEnd  Action = "history_pane_move_end"

	ToggleForcus      Action = "toggle_forcus"
	ForcusWatchPane   Action = "forcus_watch_pane"
	ForcusHistoryPane Action = "forcus_history_pane"

	Quit   Action = "quit"
	Reset  Action = "reset"
	Cancel Action = "cancel"
	Help   Action = "help"

	ToggleColor      Action = "toggle_color"
	ToggleLineNumber Action = "toggle_line_number"
	ToggleReverse    Action = "toggle_reverse"

	ToggleMouseSupport Action = "toggle_mouse_support"

	ToggleViewPaneUI      Action = "toggle_view_pane_ui"
	ToggleViewHeaderPane  Action = "toggle_view_header_pane"
	ToggleViewHistoryPane Action = "toggle_view_history_pane"

	ToggleBorder    Action = "toggle_border"
	ToggleScrollBar Action = "toggle_scroll_bar"

	ToggleDiffMode   Action = "toggle_diff_mode"
	SetDiffModePlane Action = "set_diff_mode_plane"
	SetDiffModeWatch Action = "set_diff_mode_watch"
	SetDiffModeLine  Action = "set_diff_mode_line"
	SetDiffModeWord  Action = "set_diff_mode_word"
	SetDiffOnly      Action = "set_diff_only"

	ToggleOutputMode     Action = "toggle_output_mode"
	SetOutputModeOutput  Action = "set_output_mode_output"
	SetOutputModeStdout  Action = "set_output_mode_stdout"
	SetOutputModeStderr  Action = "set_output_mode_stderr"

	IntervalPlus  Action = "interval_plus"
	IntervalMinus Action = "interval_minus"

	ChangeFilterMode      Action = "change_filter_mode"
	ChangeRegexFilterMode Action = "change_regex_filter_mode"

	// Yank copies the current WatchArea render to the system clipboard.
	// Not part of the ported InputAction enum; a supplemented feature.
	Yank Action = "yank"
)
