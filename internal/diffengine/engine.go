package diffengine

import (
	"strings"

	"github.com/hwatch-go/hwatch/internal/ansi"
)

// Render dispatches to one of the four diff strategies. Tab expansion is
// applied here, before diffing, matching the interactive call path; batch
// callers that want raw tabs pass opts.TabSize == 0 and expand explicitly.
func Render(mode Mode, src, dest string, opts Options) RenderOutput {
	if opts.TabSize > 0 {
		src = expandTabs(src, opts.TabSize)
		dest = expandTabs(dest, opts.TabSize)
	}
	switch mode {
	case ModeWatch:
		return renderWatch(src, dest, opts)
	case ModeLine:
		return renderLineDiff(src, dest, opts, false)
	case ModeWord:
		return renderLineDiff(src, dest, opts, true)
	default:
		return renderPlane(dest, opts)
	}
}

func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tab - (col % tab)
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// digitWidth returns the decimal digit count of n, the header width for
// line numbers (spec.md §4.3: "digit count of max(src_lines, dest_lines)").
func digitWidth(n int) int {
	if n < 1 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// mergeAdjacent coalesces runs of identical style into one span, keeping
// rendered line spans minimal regardless of which renderer built them
// character-by-character.
func mergeAdjacent(line ansi.Line) ansi.Line {
	if len(line) == 0 {
		return line
	}
	out := ansi.Line{line[0]}
	for _, sp := range line[1:] {
		last := &out[len(out)-1]
		if last.Style == sp.Style {
			last.Text += sp.Text
		} else {
			out = append(out, sp)
		}
	}
	return out
}
