package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// PlainText returns the concatenated text of a Line, discarding style.
func (l Line) PlainText() string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// SGR renders style as an SGR escape sequence ("\x1b[1;31m"), or "" for the
// zero-value style (no attributes set).
func (s Style) SGR() string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Blink {
		codes = append(codes, "5")
	}
	if s.Reverse {
		codes = append(codes, "7")
	}
	if s.Hidden {
		codes = append(codes, "8")
	}
	if s.Strike {
		codes = append(codes, "9")
	}
	if code := colorCode(s.FG, 30, 90, 38); code != "" {
		codes = append(codes, code)
	}
	if code := colorCode(s.BG, 40, 100, 48); code != "" {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCode(c Color, basicBase, brightBase, extBase int) string {
	switch c.Kind {
	case ColorBasic:
		if c.Basic < 8 {
			return strconv.Itoa(basicBase + c.Basic)
		}
		return strconv.Itoa(brightBase + c.Basic - 8)
	case ColorIndexed:
		return fmt.Sprintf("%d;5;%d", extBase, c.Index)
	case ColorTrueColor:
		return fmt.Sprintf("%d;2;%d;%d;%d", extBase, c.R, c.G, c.B)
	default:
		return ""
	}
}

// Reset is the SGR reset escape.
const Reset = "\x1b[0m"

// Reversed returns a copy of s with Reverse set, preserving every
// other attribute. Used by Watch mode's color-preserving diff, which
// "patches the reversed modifier on differing positions while preserving
// underlying color" (spec.md §4.3).
func (s Style) Reversed() Style {
	s.Reverse = true
	return s
}

// RenderANSI re-emits lines as a single ANSI-escaped string, suitable for
// batch output or any path that needs raw bytes rather than styled spans.
func RenderANSI(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		var last Style
		wrote := false
		for _, sp := range line {
			if !wrote || sp.Style != last {
				if wrote {
					b.WriteString(Reset)
				}
				if sgr := sp.Style.SGR(); sgr != "" {
					b.WriteString(sgr)
				}
				last = sp.Style
			}
			b.WriteString(sp.Text)
			wrote = true
		}
		if wrote && last != (Style{}) {
			b.WriteString(Reset)
		}
	}
	return b.String()
}
