// Package ansi parses ANSI SGR escape sequences into styled text runs
// (spec.md §4.4) and provides the inverse strip operation.
package ansi

import (
	"strconv"
	"strings"
	"unicode/utf8"

	xansi "github.com/charmbracelet/x/ansi"
)

// Strip removes all ANSI/CSI escape sequences from s, leaving plain UTF-8.
// Delegates to charmbracelet/x/ansi, already a pack dependency for
// terminal-width-aware string operations (internal/runtui/model_view.go).
func Strip(s string) string {
	return xansi.Strip(s)
}

// Style is the decoded SGR state applied to a Span. Foreground/Background
// use the zero value ColorNone when unset.
type Style struct {
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Blink     bool
	Reverse   bool
	Hidden    bool
	Strike    bool
	FG        Color
	BG        Color
}

// ColorKind distinguishes the three SGR color encodings.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorBasic
	ColorIndexed
	ColorTrueColor
)

// Color is a decoded foreground or background color.
type Color struct {
	Kind       ColorKind
	Basic      int // 0-15 (8 normal + 8 bright), only when Kind == ColorBasic
	Index      int // 0-255, only when Kind == ColorIndexed
	R, G, B    uint8
}

// Span is one run of text sharing a single Style, as produced by Decode.
// A linefeed in the input closes the current run and starts a new Line.
type Span struct {
	Text  string
	Style Style
}

// Line is one visual line of decoded spans (spec.md §4.4: "a linefeed
// closes the current run and starts a new visual line").
type Line []Span

// Decode parses b into a sequence of visual lines of styled spans. Unknown
// SGR codes are silently dropped without affecting the current style.
// Carriage returns are ignored.
func Decode(b []byte) []Line {
	var lines []Line
	var cur Line
	var textBuf strings.Builder
	style := Style{}

	flush := func() {
		if textBuf.Len() == 0 {
			return
		}
		cur = append(cur, Span{Text: textBuf.String(), Style: style})
		textBuf.Reset()
	}

	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c == '\r':
			i++
		case c == '\n':
			flush()
			lines = append(lines, cur)
			cur = nil
			i++
		case c == 0x1b && i+1 < len(b) && b[i+1] == '[':
			end, params, cmd := scanCSI(b, i)
			if cmd == 'm' {
				flush()
				style = applySGR(style, params)
			}
			// Non-SGR CSI sequences (cursor movement, clears, …) carry no
			// text and are dropped: hwatch renders static captured output,
			// not a live terminal, so there is nothing for them to do.
			i = end
		case c == 0x1b:
			// Lone/unrecognized escape: drop the ESC byte and continue so a
			// truncated sequence can't corrupt the rest of the decode.
			i++
		default:
			// Consume one UTF-8 rune's worth of bytes.
			r, size := decodeRune(b[i:])
			textBuf.WriteRune(r)
			i += size
		}
	}
	flush()
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// scanCSI reads a CSI sequence starting at b[start] (the ESC byte) and
// returns the index just past the final command byte, the decoded numeric
// parameters, and the command byte itself.
func scanCSI(b []byte, start int) (end int, params []int, cmd byte) {
	i := start + 2 // skip ESC '['
	paramStart := i
	for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
		i++
	}
	raw := string(b[paramStart:min(i, len(b))])
	if i >= len(b) {
		return i, nil, 0
	}
	cmd = b[i]
	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			params = append(params, 0)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			params = append(params, 0)
			continue
		}
		params = append(params, n)
	}
	return i + 1, params, cmd
}

func decodeRune(b []byte) (rune, int) {
	r, size := utf8.DecodeRune(b)
	return r, size
}

// applySGR folds SGR parameter codes onto style, per the ECMA-48 SGR table
// referenced in spec.md §4.4.
func applySGR(style Style, params []int) Style {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			style = Style{}
		case code == 1:
			style.Bold = true
		case code == 2:
			style.Dim = true
		case code == 3:
			style.Italic = true
		case code == 4:
			style.Underline = true
		case code == 5 || code == 6:
			style.Blink = true
		case code == 7:
			style.Reverse = true
		case code == 8:
			style.Hidden = true
		case code == 9:
			style.Strike = true
		case code == 22:
			style.Bold, style.Dim = false, false
		case code == 23:
			style.Italic = false
		case code == 24:
			style.Underline = false
		case code == 25:
			style.Blink = false
		case code == 27:
			style.Reverse = false
		case code == 28:
			style.Hidden = false
		case code == 29:
			style.Strike = false
		case code >= 30 && code <= 37:
			style.FG = Color{Kind: ColorBasic, Basic: code - 30}
		case code == 38:
			c, consumed := decodeExtendedColor(params[i+1:])
			style.FG = c
			i += consumed
		case code == 39:
			style.FG = Color{}
		case code >= 40 && code <= 47:
			style.BG = Color{Kind: ColorBasic, Basic: code - 40}
		case code == 48:
			c, consumed := decodeExtendedColor(params[i+1:])
			style.BG = c
			i += consumed
		case code == 49:
			style.BG = Color{}
		case code >= 90 && code <= 97:
			style.FG = Color{Kind: ColorBasic, Basic: code - 90 + 8}
		case code >= 100 && code <= 107:
			style.BG = Color{Kind: ColorBasic, Basic: code - 100 + 8}
		default:
			// Unknown code: dropped without affecting style (spec.md §4.4).
		}
	}
	return style
}

// decodeExtendedColor reads a 256-indexed ("5;N") or truecolor ("2;R;G;B")
// color starting right after the 38/48 introducer. Returns the decoded
// color and how many extra params it consumed.
func decodeExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return Color{}, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, len(rest)
		}
		return Color{Kind: ColorIndexed, Index: rest[1]}, 2
	case 2:
		if len(rest) < 4 {
			return Color{}, len(rest)
		}
		return Color{
			Kind: ColorTrueColor,
			R:    uint8(rest[1]), G: uint8(rest[2]), B: uint8(rest[3]),
		}, 4
	default:
		return Color{}, len(rest)
	}
}
