package diffengine

import (
	"fmt"

	"github.com/hwatch-go/hwatch/internal/ansi"
)

// renderPlane is ModeNone: a line-numbered pass-through of dest, src is
// unused. When color is false, dest is ANSI-stripped before decoding so
// escape sequences never reach the output.
func renderPlane(dest string, opts Options) RenderOutput {
	var decoded []ansi.Line
	if opts.Color {
		decoded = ansi.Decode([]byte(dest))
	} else {
		decoded = ansi.Decode([]byte(ansi.Strip(dest)))
	}
	width := digitWidth(len(decoded))
	out := make([]Line, len(decoded))
	for i, spans := range decoded {
		if opts.LineNumber {
			spans = prependLineNumber(spans, i+1, width)
		}
		out[i] = newLine(spans)
	}
	return RenderOutput{Lines: out}
}

// prependLineNumber prepends a "<n> | " span (right-justified to width)
// ahead of an already-built line's spans.
func prependLineNumber(spans ansi.Line, n, width int) ansi.Line {
	prefix := ansi.Span{Text: fmt.Sprintf("%*d | ", width, n)}
	out := make(ansi.Line, 0, len(spans)+1)
	out = append(out, prefix)
	return append(out, spans...)
}
