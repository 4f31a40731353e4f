package diffengine

import (
	"strings"

	"github.com/hwatch-go/hwatch/internal/ansi"
)

// padRune fills positions past the shorter line/side for comparison
// purposes only; a regular space is trimmed by the interactive layer, so
// a non-breaking space is used as the sentinel instead (spec.md §4.3;
// original_source/crates/core/diffmode_watch.rs:169-171). The sentinel is
// never emitted: diffCharLine substitutes a plain space wherever it
// marks a padded position.
const padRune = '\u00A0'

// renderWatch is ModeWatch: a character-aligned diff. src and dest are
// split into lines padded to the longer count with empty strings; each
// line pair is then compared position by position.
func renderWatch(src, dest string, opts Options) RenderOutput {
	srcLines := splitRaw(src)
	destLines := splitRaw(dest)
	n := len(destLines)
	if len(srcLines) > n {
		n = len(srcLines)
	}
	width := digitWidth(n)
	out := make([]Line, n)
	for i := 0; i < n; i++ {
		var s, d string
		if i < len(srcLines) {
			s = srcLines[i]
		}
		if i < len(destLines) {
			d = destLines[i]
		}
		spans := diffCharLine(s, d, opts.Color)
		if opts.LineNumber {
			spans = prependLineNumber(spans, i+1, width)
		}
		out[i] = newLine(spans)
	}
	return RenderOutput{Lines: out}
}

func splitRaw(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// charRun is one decoded character and the style it carries, used to align
// two lines position by position.
type charRun struct {
	r     rune
	style ansi.Style
}

func stylePerChar(s string) []charRun {
	lines := ansi.Decode([]byte(s))
	if len(lines) == 0 {
		return nil
	}
	var out []charRun
	for _, sp := range lines[0] {
		for _, r := range sp.Text {
			out = append(out, charRun{r: r, style: sp.Style})
		}
	}
	return out
}

func plainPerChar(s string) []charRun {
	var out []charRun
	for _, r := range s {
		out = append(out, charRun{r: r})
	}
	return out
}

// diffCharLine compares one src/dest line pair position by position. Equal
// positions render plain (or with preserved color); differing positions
// render with the reversed modifier patched on, preserving any underlying
// color (spec.md §4.3's "color-preserving variant").
func diffCharLine(src, dest string, color bool) ansi.Line {
	var srcRuns, destRuns []charRun
	if color {
		srcRuns = stylePerChar(src)
		destRuns = stylePerChar(dest)
	} else {
		srcRuns = plainPerChar(ansi.Strip(src))
		destRuns = plainPerChar(ansi.Strip(dest))
	}

	n := len(destRuns)
	if len(srcRuns) > n {
		n = len(srcRuns)
	}
	var spans ansi.Line
	for i := 0; i < n; i++ {
		destPadded := i >= len(destRuns)
		if destPadded {
			// dest ran out at this position: there is nothing new to show,
			// so the padRune sentinel is never rendered — only a plain
			// space stands in for it, reversed in color mode to still mark
			// the line as shorter (original's two renderers agree on
			// substituting the glyph, and differ only on the reverse flag).
			style := ansi.Style{}
			if color {
				style = style.Reversed()
			}
			spans = append(spans, ansi.Span{Text: " ", Style: style})
			continue
		}

		dr := destRuns[i].r
		style := destRuns[i].style
		sr := rune(padRune)
		if i < len(srcRuns) {
			sr = srcRuns[i].r
		}
		if dr != sr {
			style = style.Reversed()
		}
		spans = append(spans, ansi.Span{Text: string(dr), Style: style})
	}
	return mergeAdjacent(spans)
}
