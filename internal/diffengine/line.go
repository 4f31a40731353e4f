package diffengine

import (
	"strings"

	"github.com/hwatch-go/hwatch/internal/ansi"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// styleAdd/styleRem are the fixed diff colors: green for additions, red for
// removals (spec.md §4.3).
var (
	styleAdd = ansi.Style{FG: ansi.Color{Kind: ansi.ColorBasic, Basic: 2}}
	styleRem = ansi.Style{FG: ansi.Color{Kind: ansi.ColorBasic, Basic: 1}}
)

type blockKind int

const (
	blockSame blockKind = iota
	blockRem
	blockAdd
	blockPaired // a Rem block immediately adjacent to an Add block, re-diffed at word granularity
)

type lineBlock struct {
	kind     blockKind
	lines    []string // blockSame, blockRem, blockAdd
	remLines []string // blockPaired
	addLines []string // blockPaired
}

// renderLineDiff implements both ModeLine and ModeWord: a line-granularity
// Same/Add/Rem partition via diffmatchpatch's line-diff technique, with
// word==true additionally re-diffing adjacent Rem/Add pairs at token
// granularity.
func renderLineDiff(src, dest string, opts Options, word bool) RenderOutput {
	// Diffing always operates on plain text: changed lines get the fixed
	// Add/Rem color regardless of whatever SGR state they originally
	// carried (spec.md §4.3's "changed regions are first stripped then
	// re-colored").
	plainSrc, plainDest := ansi.Strip(src), ansi.Strip(dest)

	dmp := diffmatchpatch.New()
	a, b, tbl := dmp.DiffLinesToChars(plainSrc, plainDest)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), tbl)
	blocks := groupLineBlocks(diffs)
	// word_highlight gates the token-level re-diff: Word mode with it off
	// degrades to Line mode's whole-line Add/Rem coloring.
	if word && opts.WordHighlight {
		blocks = pairAddRemBlocks(blocks)
	}

	width := digitWidth(max(countLines(plainSrc), countLines(plainDest)))

	var out []Line
	srcNo, destNo := 0, 0
	emit := func(prefix string, style ansi.Style, text string, no int) {
		spans := ansi.Line{{Text: prefix, Style: style}, {Text: text, Style: style}}
		if opts.LineNumber {
			spans = prependLineNumber(spans, no, width)
		}
		out = append(out, newLine(spans))
	}
	emitStyled := func(prefix string, prefixStyle ansi.Style, body ansi.Line, no int) {
		spans := append(ansi.Line{{Text: prefix, Style: prefixStyle}}, body...)
		if opts.LineNumber {
			spans = prependLineNumber(spans, no, width)
		}
		out = append(out, newLine(spans))
	}

	for _, blk := range blocks {
		switch blk.kind {
		case blockSame:
			for _, ln := range blk.lines {
				srcNo++
				destNo++
				if opts.OnlyDiffline {
					continue
				}
				emit("   ", ansi.Style{}, ln, destNo)
			}
		case blockRem:
			for _, ln := range blk.lines {
				srcNo++
				emit("-  ", styleRem, ln, srcNo)
			}
		case blockAdd:
			for _, ln := range blk.lines {
				destNo++
				emit("+  ", styleAdd, ln, destNo)
			}
		case blockPaired:
			remSpans, addSpans := wordDiffPair(blk.remLines, blk.addLines)
			for _, spans := range remSpans {
				srcNo++
				emitStyled("-  ", styleRem, spans, srcNo)
			}
			for _, spans := range addSpans {
				destNo++
				emitStyled("+  ", styleAdd, spans, destNo)
			}
		}
	}
	return RenderOutput{Lines: out}
}

func groupLineBlocks(diffs []diffmatchpatch.Diff) []lineBlock {
	var blocks []lineBlock
	for _, d := range diffs {
		lines := splitDiffText(d.Text)
		if len(lines) == 0 {
			continue
		}
		var kind blockKind
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = blockRem
		case diffmatchpatch.DiffInsert:
			kind = blockAdd
		default:
			kind = blockSame
		}
		blocks = append(blocks, lineBlock{kind: kind, lines: lines})
	}
	return blocks
}

// splitDiffText splits a diffmatchpatch line-diff block's text (lines
// joined by "\n", from DiffLinesToChars/DiffCharsToLines) back into its
// constituent lines.
func splitDiffText(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// pairAddRemBlocks merges an adjacent Rem/Add (or Add/Rem) block pair into
// a single blockPaired entry for word-level re-diffing.
func pairAddRemBlocks(blocks []lineBlock) []lineBlock {
	var out []lineBlock
	i := 0
	for i < len(blocks) {
		cur := blocks[i]
		if i+1 < len(blocks) {
			next := blocks[i+1]
			if cur.kind == blockRem && next.kind == blockAdd {
				out = append(out, lineBlock{kind: blockPaired, remLines: cur.lines, addLines: next.lines})
				i += 2
				continue
			}
			if cur.kind == blockAdd && next.kind == blockRem {
				out = append(out, lineBlock{kind: blockPaired, remLines: next.lines, addLines: cur.lines})
				i += 2
				continue
			}
		}
		out = append(out, cur)
		i++
	}
	return out
}
