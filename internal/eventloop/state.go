// Package eventloop implements the single dispatcher that owns all mutable
// run state (spec.md §4.6). Loop reads no channel: renderers call its
// methods (Tick, Dispatch, SetFilter) directly, and a mutex serializes
// those calls.
package eventloop

import (
	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/filter"
	"github.com/hwatch-go/hwatch/internal/result"
)

// Area selects which pane has input focus.
type Area int

const (
	AreaWatch Area = iota
	AreaHistory
)

// Window selects the overlay currently shown atop the normal layout.
type Window int

const (
	WindowNormal Window = iota
	WindowHelp
)

// InputMode selects what a typed character is routed to.
type InputMode int

const (
	InputNone InputMode = iota
	InputFilter
	InputRegexFilter
)

// State is the EventLoop's selection state (spec.md §3): everything the
// renderer needs besides the ResultStore contents themselves.
type State struct {
	ActiveArea   Area
	ActiveWindow Window
	InputMode    InputMode

	OutputView result.View
	DiffMode   diffengine.Mode

	SelectedIndex int

	Filter     filter.Predicate
	Reverse    bool
	LineNumber bool
	Color      bool

	OnlyDiffline  bool
	WordHighlight bool
	TabSize       int

	IntervalSeconds float64
	// Paused stops the ticker from accepting new results (spec.md §3, §5)
	// but has no default key binding: neither spec.md §6 nor the original
	// implementation's InputAction enum names a toggle for it, so it's only
	// reachable by a caller setting State directly (e.g. a future
	// --start-paused flag), not through Dispatch.
	Paused bool

	MouseEvents bool
	Border      bool
	ScrollBar   bool
	Beep        bool

	ShowHeader  bool
	ShowHistory bool

	Quit bool
}

// DiffOptions builds the diffengine.Options this state implies.
func (s State) DiffOptions() diffengine.Options {
	return diffengine.Options{
		Color:         s.Color,
		LineNumber:    s.LineNumber,
		WordHighlight: s.WordHighlight,
		OnlyDiffline:  s.OnlyDiffline,
		TabSize:       s.TabSize,
	}
}
