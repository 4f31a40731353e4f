// Package diffengine renders the four diff modes spec.md §4.3 defines
// (None/Plane, Watch, Line, Word) over a (src, dest) pair, producing either
// styled spans for the interactive renderer or ANSI-escaped strings for
// batch output.
package diffengine

import (
	"github.com/hwatch-go/hwatch/internal/ansi"
)

// Mode selects one of the four diff strategies. Modeled as a closed set of
// functions dispatched on this tag rather than an interface hierarchy
// (spec.md §9: "avoid deep class hierarchies").
type Mode int

const (
	ModeNone Mode = iota // "Plane" in spec.md's prose
	ModeWatch
	ModeLine
	ModeWord
)

// String implements fmt.Stringer, also used for the header's diff-mode flag.
func (m Mode) String() string {
	switch m {
	case ModeWatch:
		return "watch"
	case ModeLine:
		return "line"
	case ModeWord:
		return "word"
	default:
		return "none"
	}
}

// Cycle returns the next mode in None -> Watch -> Line -> Word -> None order.
func (m Mode) Cycle() Mode {
	return (m + 1) % 4
}

// Options is the configuration bag passed to Render per call, cloned by
// the caller for each invocation.
type Options struct {
	Color         bool
	LineNumber    bool
	WordHighlight bool
	OnlyDiffline  bool
	TabSize       int // 0 disables tab expansion
}

// Line is one rendered visual line: styled spans for interactive use, a
// plain ANSI-escaped string for batch use. Both are always populated so
// callers can pick per spec.md's is_batch flag without re-rendering.
type Line struct {
	Spans ansi.Line
	ANSI  string
}

// RenderOutput is the result of one Render call: a sequence of Lines.
type RenderOutput struct {
	Lines []Line
}

// PlainLines returns each line's already-computed ANSI string, the
// representation batch callers want (spec.md §4.3's "is_batch" selector).
func (o RenderOutput) PlainLines() []string {
	out := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		out[i] = l.ANSI
	}
	return out
}

// StyledLines returns each line's styled spans, the representation the
// interactive renderer wants.
func (o RenderOutput) StyledLines() []ansi.Line {
	out := make([]ansi.Line, len(o.Lines))
	for i, l := range o.Lines {
		out[i] = l.Spans
	}
	return out
}

func newLine(spans ansi.Line) Line {
	return Line{Spans: spans, ANSI: ansi.RenderANSI([]ansi.Line{spans})}
}
