package diffengine

import (
	"strings"

	"github.com/hwatch-go/hwatch/internal/ansi"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// wordDiffPair re-diffs a paired Rem/Add block line by line, at whitespace
// token granularity. Lines are matched by index; an unmatched tail on
// either side falls back to whole-line Rem/Add coloring.
func wordDiffPair(remLines, addLines []string) ([]ansi.Line, []ansi.Line) {
	n := len(remLines)
	if len(addLines) > n {
		n = len(addLines)
	}
	remOut := make([]ansi.Line, 0, len(remLines))
	addOut := make([]ansi.Line, 0, len(addLines))
	for i := 0; i < n; i++ {
		hasR := i < len(remLines)
		hasA := i < len(addLines)
		switch {
		case hasR && hasA:
			r, a := wordDiffLine(remLines[i], addLines[i])
			remOut = append(remOut, r)
			addOut = append(addOut, a)
		case hasR:
			remOut = append(remOut, ansi.Line{{Text: remLines[i], Style: styleRem}})
		case hasA:
			addOut = append(addOut, ansi.Line{{Text: addLines[i], Style: styleAdd}})
		}
	}
	return remOut, addOut
}

// wordDiffLine diffs one removed/added line pair at token granularity.
// Tokens present on both sides keep the line color; tokens unique to one
// side render reversed (spec.md §4.3).
func wordDiffLine(remLine, addLine string) (ansi.Line, ansi.Line) {
	remTokens := tokenize(remLine)
	addTokens := tokenize(addLine)

	// Reuse DiffLinesToChars/DiffCharsToLines at token granularity by
	// treating each token as a pseudo-line joined with "\n": every token
	// becomes a single rune in the encoded strings, so DiffMain's
	// char-level diff is a token-level diff once decoded back.
	dmp := diffmatchpatch.New()
	a, b, tbl := dmp.DiffLinesToChars(strings.Join(remTokens, "\n"), strings.Join(addTokens, "\n"))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), tbl)

	var remSpans, addSpans ansi.Line
	for _, d := range diffs {
		text := strings.Join(splitDiffText(d.Text), "")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			remSpans = append(remSpans, ansi.Span{Text: text, Style: styleRem})
			addSpans = append(addSpans, ansi.Span{Text: text, Style: styleAdd})
		case diffmatchpatch.DiffDelete:
			remSpans = append(remSpans, ansi.Span{Text: text, Style: styleRem.Reversed()})
		case diffmatchpatch.DiffInsert:
			addSpans = append(addSpans, ansi.Span{Text: text, Style: styleAdd.Reversed()})
		}
	}
	return mergeAdjacent(remSpans), mergeAdjacent(addSpans)
}

// tokenize splits s into alternating whitespace/non-whitespace runs so the
// original spacing can be reconstructed by concatenation.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	var cur strings.Builder
	curIsSpace := isSpace(rune(s[0]))
	for _, r := range s {
		sp := isSpace(r)
		if sp != curIsSpace && cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
			curIsSpace = sp
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
