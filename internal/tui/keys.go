package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hwatch-go/hwatch/internal/keymap"
)

// translateKey converts a bubbletea key event into the package's own Key
// syntax (spec.md §6), independent of bubbletea's internal Type constants
// so config overrides stay meaningful across terminals.
func translateKey(msg tea.KeyMsg) (keymap.Key, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return keymap.Key{Code: "up"}, true
	case tea.KeyDown:
		return keymap.Key{Code: "down"}, true
	case tea.KeyLeft:
		return keymap.Key{Code: "left"}, true
	case tea.KeyRight:
		return keymap.Key{Code: "right"}, true
	case tea.KeyHome:
		return keymap.Key{Code: "home"}, true
	case tea.KeyEnd:
		return keymap.Key{Code: "end"}, true
	case tea.KeyPgUp:
		return keymap.Key{Code: "pageup"}, true
	case tea.KeyPgDown:
		return keymap.Key{Code: "pagedown"}, true
	case tea.KeyEnter:
		return keymap.Key{Code: "enter"}, true
	case tea.KeyEsc:
		return keymap.Key{Code: "esc"}, true
	case tea.KeyTab:
		return keymap.Key{Code: "tab"}, true
	case tea.KeyShiftTab:
		return keymap.Key{Code: "tab", Shift: true}, true
	case tea.KeyBackspace:
		return keymap.Key{Code: "backspace"}, true
	case tea.KeyDelete:
		return keymap.Key{Code: "delete"}, true
	case tea.KeyInsert:
		return keymap.Key{Code: "insert"}, true
	case tea.KeySpace:
		return keymap.Key{Code: "space"}, true
	case tea.KeyCtrlC:
		return keymap.Key{Code: "c", Ctrl: true}, true
	case tea.KeyF1:
		return keymap.Key{Code: "f1"}, true
	case tea.KeyF2:
		return keymap.Key{Code: "f2"}, true
	case tea.KeyF3:
		return keymap.Key{Code: "f3"}, true
	case tea.KeyF4:
		return keymap.Key{Code: "f4"}, true
	case tea.KeyF5:
		return keymap.Key{Code: "f5"}, true
	case tea.KeyF6:
		return keymap.Key{Code: "f6"}, true
	case tea.KeyF7:
		return keymap.Key{Code: "f7"}, true
	case tea.KeyF8:
		return keymap.Key{Code: "f8"}, true
	case tea.KeyF9:
		return keymap.Key{Code: "f9"}, true
	case tea.KeyF10:
		return keymap.Key{Code: "f10"}, true
	case tea.KeyF11:
		return keymap.Key{Code: "f11"}, true
	case tea.KeyF12:
		return keymap.Key{Code: "f12"}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return keymap.Key{}, false
		}
		r := msg.Runes[0]
		k := keymap.Key{Alt: msg.Alt}
		switch {
		case r == '+':
			k.Code = "plus"
		case r == '-':
			k.Code = "minus"
		case unicode.IsUpper(r):
			k.Shift = true
			k.Code = strings.ToLower(string(r))
		default:
			k.Code = string(r)
		}
		return k, true
	}
	return keymap.Key{}, false
}

// translateMouse converts a bubbletea mouse event into a mouse Key, using
// MouseMsg's documented String() form rather than its internal fields so
// the mapping survives bubbletea's own button/action refactors.
func translateMouse(msg tea.MouseMsg) (keymap.Key, bool) {
	s := msg.String()
	switch {
	case strings.Contains(s, "wheel up"):
		return keymap.Key{Mouse: true, Code: "scroll_up"}, true
	case strings.Contains(s, "wheel down"):
		return keymap.Key{Mouse: true, Code: "scroll_down"}, true
	case strings.Contains(s, "wheel left"):
		return keymap.Key{Mouse: true, Code: "scroll_left"}, true
	case strings.Contains(s, "wheel right"):
		return keymap.Key{Mouse: true, Code: "scroll_right"}, true
	case strings.Contains(s, "left") && strings.Contains(s, "release"):
		return keymap.Key{Mouse: true, Code: "button_up_left"}, true
	case strings.Contains(s, "left"):
		return keymap.Key{Mouse: true, Code: "button_down_left"}, true
	case strings.Contains(s, "right") && strings.Contains(s, "release"):
		return keymap.Key{Mouse: true, Code: "button_up_right"}, true
	case strings.Contains(s, "right"):
		return keymap.Key{Mouse: true, Code: "button_down_right"}, true
	}
	return keymap.Key{}, false
}

// isWatchPaneAction reports whether a is one of the watch_pane_* actions,
// which the tui package intercepts directly against its viewport rather
// than routing through eventloop.Loop.Dispatch (spec.md §4.6's note that
// Bubble Tea's own viewport owns Watch-pane scrolling).
func isWatchPaneAction(a keymap.Action) bool {
	switch a {
	case keymap.WatchPaneUp, keymap.WatchPaneDown,
		keymap.WatchPanePageUp, keymap.WatchPanePageDown,
		keymap.WatchPaneMoveTop, keymap.WatchPaneMoveEnd:
		return true
	}
	return false
}
