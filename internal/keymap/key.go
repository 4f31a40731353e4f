package keymap

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a normalized, comparable key chord: either a keyboard chord
// (modifiers + Code) or a mouse event (Mouse=true, Code one of the mouse
// tokens). Comparable structs make a good map key directly, so Map is
// defined as map[Key]Action with no hashing helper needed.
type Key struct {
	Code                                string
	Mouse                               bool
	Shift, Ctrl, Alt, Super, Hyper, Meta bool
}

var keyTokens = map[string]string{
	"esc": "esc", "enter": "enter", "left": "left", "right": "right",
	"up": "up", "down": "down", "home": "home", "end": "end",
	"pageup": "pageup", "pagedown": "pagedown", "backtab": "backtab",
	"backspace": "backspace", "delete": "delete", "del": "delete",
	"insert": "insert", "ins": "insert", "space": "space", "tab": "tab",
	"plus": "plus", "minus": "minus",
}

var mouseTokens = map[string]bool{
	"button_down_left": true, "button_down_right": true,
	"button_up_left": true, "button_up_right": true,
	"scroll_up": true, "scroll_down": true,
	"scroll_left": true, "scroll_right": true,
}

// ParseKey parses a key-syntax string (spec.md §6): modifiers from
// {shift,ctrl,alt,super,hyper,meta} joined by "-", then a final key token
// or a bare "mouse-<button>" form (mouse chords take no modifiers).
func ParseKey(spec string) (Key, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return Key{}, fmt.Errorf("keymap: empty key spec")
	}
	if rest, ok := strings.CutPrefix(spec, "mouse-"); ok {
		if !mouseTokens[rest] {
			return Key{}, fmt.Errorf("keymap: unknown mouse token %q", rest)
		}
		return Key{Code: rest, Mouse: true}, nil
	}

	parts := strings.Split(spec, "-")
	last := parts[len(parts)-1]
	k := Key{}
	for _, m := range parts[:len(parts)-1] {
		switch m {
		case "shift":
			k.Shift = true
		case "ctrl":
			k.Ctrl = true
		case "alt":
			k.Alt = true
		case "super":
			k.Super = true
		case "hyper":
			k.Hyper = true
		case "meta":
			k.Meta = true
		default:
			return Key{}, fmt.Errorf("keymap: unknown modifier %q", m)
		}
	}

	code, err := normalizeCode(last)
	if err != nil {
		return Key{}, err
	}
	k.Code = code
	return k, nil
}

func normalizeCode(tok string) (string, error) {
	if canon, ok := keyTokens[tok]; ok {
		return canon, nil
	}
	if len(tok) >= 2 && tok[0] == 'f' {
		if n, err := strconv.Atoi(tok[1:]); err == nil && n >= 1 && n <= 12 {
			return tok, nil
		}
	}
	if len([]rune(tok)) == 1 {
		return tok, nil
	}
	return "", fmt.Errorf("keymap: unrecognized key token %q", tok)
}

// String renders Key back to its canonical key-syntax form.
func (k Key) String() string {
	if k.Mouse {
		return "mouse-" + k.Code
	}
	var mods []string
	if k.Shift {
		mods = append(mods, "shift")
	}
	if k.Ctrl {
		mods = append(mods, "ctrl")
	}
	if k.Alt {
		mods = append(mods, "alt")
	}
	if k.Super {
		mods = append(mods, "super")
	}
	if k.Hyper {
		mods = append(mods, "hyper")
	}
	if k.Meta {
		mods = append(mods, "meta")
	}
	if len(mods) == 0 {
		return k.Code
	}
	return strings.Join(mods, "-") + "-" + k.Code
}
