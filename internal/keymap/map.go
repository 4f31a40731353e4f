package keymap

import (
	"fmt"
	"strings"
)

// Map is a key-chord to action table. The zero value is an empty map;
// DefaultMap, ParseConfig and Merge return populated ones.
type Map map[Key]Action

var allActions = map[Action]bool{
	Up: true, Down: true, PageUp: true, PageDown: true, MoveTop: true, MoveEnd: true,
	WatchPaneUp: true, WatchPaneDown: true, WatchPanePageUp: true, WatchPanePageDown: true,
	WatchPaneMoveTop: true, WatchPaneMoveEnd: true,
	HistoryPaneUp: true, HistoryPaneDown: true, HistoryPanePageUp: true, HistoryPanePageDown: true,
	HistoryPaneMoveTop: true, HistoryPaneMoveEnd: true,
	ToggleForcus: true, ForcusWatchPane: true, ForcusHistoryPane: true,
	Quit: true, Reset: true, Cancel: true, Help: true,
	ToggleColor: true, ToggleLineNumber: true, ToggleReverse: true,
	ToggleMouseSupport: true,
	ToggleViewPaneUI: true, ToggleViewHeaderPane: true, ToggleViewHistoryPane: true,
	ToggleBorder: true, ToggleScrollBar: true,
	ToggleDiffMode: true, SetDiffModePlane: true, SetDiffModeWatch: true,
	SetDiffModeLine: true, SetDiffModeWord: true, SetDiffOnly: true,
	ToggleOutputMode: true, SetOutputModeOutput: true, SetOutputModeStdout: true, SetOutputModeStderr: true,
	IntervalPlus: true, IntervalMinus: true,
	ChangeFilterMode: true, ChangeRegexFilterMode: true,
	Yank: true,
}

// IsValid reports whether a is one of the known action tokens.
func (a Action) IsValid() bool {
	return allActions[a]
}

// DefaultMap returns the built-in bindings, ported from the original
// implementation's default_keymap().
func DefaultMap() Map {
	m := Map{}
	set := func(spec string, action Action) {
		k, err := ParseKey(spec)
		if err != nil {
			panic(fmt.Sprintf("keymap: invalid built-in default %q: %v", spec, err))
		}
		m[k] = action
	}

	set("up", Up)
	set("down", Down)
	set("pageup", PageUp)
	set("pagedown", PageDown)
	set("home", MoveTop)
	set("end", MoveEnd)
	set("tab", ToggleForcus)
	set("left", ForcusWatchPane)
	set("right", ForcusHistoryPane)
	set("q", Quit)
	set("esc", Reset)
	set("ctrl-c", Cancel)
	set("h", Help)
	set("c", ToggleColor)
	set("n", ToggleLineNumber)
	set("r", ToggleReverse)
	set("m", ToggleMouseSupport)
	set("t", ToggleViewPaneUI)
	set("backspace", ToggleViewHistoryPane)

	set("d", ToggleDiffMode)
	set("0", SetDiffModePlane)
	set("1", SetDiffModeWatch)
	set("2", SetDiffModeLine)
	set("3", SetDiffModeWord)
	set("shift-o", SetDiffOnly)

	set("o", ToggleOutputMode)
	set("f1", SetOutputModeStdout)
	set("f2", SetOutputModeStderr)
	set("f3", SetOutputModeOutput)

	set("plus", IntervalPlus)
	set("minus", IntervalMinus)

	set("/", ChangeFilterMode)
	set("ctrl-*", ChangeRegexFilterMode)

	set("y", Yank)

	return m
}

// ParseLine parses one INI-style "key=action" config line. Blank lines
// and lines starting with ';' or '#' are comments and return ok=false
// with a nil error.
func ParseLine(line string) (k Key, a Action, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
		return Key{}, "", false, nil
	}
	keyPart, actionPart, found := strings.Cut(line, "=")
	if !found {
		return Key{}, "", false, fmt.Errorf("keymap: malformed line %q, want key=action", line)
	}
	k, err = ParseKey(keyPart)
	if err != nil {
		return Key{}, "", false, err
	}
	a = Action(strings.ToLower(strings.TrimSpace(actionPart)))
	if !a.IsValid() {
		return Key{}, "", false, fmt.Errorf("keymap: unknown action %q", a)
	}
	return k, a, true, nil
}

// ParseConfig parses a full "--keymap" value (possibly repeated, so
// callers pass the union of all occurrences' lines) into override
// bindings layered on top of the defaults. A parse error on any line
// rejects the whole config (spec.md §7: ConfigError for a bad keymap).
func ParseConfig(lines []string) (Map, error) {
	m := Map{}
	for _, line := range lines {
		k, a, ok, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		m[k] = a
	}
	return m, nil
}

// Merge layers overrides on top of base, returning a new Map; base is
// untouched.
func Merge(base, overrides Map) Map {
	out := make(Map, len(base)+len(overrides))
	for k, a := range base {
		out[k] = a
	}
	for k, a := range overrides {
		out[k] = a
	}
	return out
}

// Lookup returns the action bound to k and whether a binding exists.
func (m Map) Lookup(k Key) (Action, bool) {
	a, ok := m[k]
	return a, ok
}
