package diffengine

import (
	"strings"
	"testing"
)

func plainText(out RenderOutput) string {
	var b strings.Builder
	for i, l := range out.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Spans.PlainText())
	}
	return b.String()
}

func TestNoneIsPassThroughOfDest(t *testing.T) {
	out := Render(ModeNone, "ignored", "a\nb\nc", Options{})
	if got := plainText(out); got != "a\nb\nc" {
		t.Fatalf("None(dest) = %q, want %q", got, "a\nb\nc")
	}
}

func TestNoneWithLineNumbers(t *testing.T) {
	out := Render(ModeNone, "", "a\nb", Options{LineNumber: true})
	if len(out.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out.Lines))
	}
	if got := out.Lines[0].Spans.PlainText(); got != "1 | a" {
		t.Fatalf("line 0 = %q, want %q", got, "1 | a")
	}
}

func TestWatchSameInputEmitsUnchanged(t *testing.T) {
	s := "hello\nworld"
	out := Render(ModeWatch, s, s, Options{})
	if got := plainText(out); got != s {
		t.Fatalf("Watch(s, s) = %q, want %q", got, s)
	}
	for _, l := range out.Lines {
		for _, sp := range l.Spans {
			if sp.Style.Reverse {
				t.Fatalf("Watch(s, s) produced a reversed run: %+v", l.Spans)
			}
		}
	}
}

func TestWatchHighlightsDifferences(t *testing.T) {
	out := Render(ModeWatch, "cat", "cut", Options{})
	if len(out.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(out.Lines))
	}
	spans := out.Lines[0].Spans
	if got := spans.PlainText(); got != "cut" {
		t.Fatalf("text = %q, want cut", got)
	}
	var reversedText string
	for _, sp := range spans {
		if sp.Style.Reverse {
			reversedText += sp.Text
		}
	}
	if reversedText != "u" {
		t.Fatalf("reversed run = %q, want %q (only the differing char)", reversedText, "u")
	}
}

func TestWatchShorterDestPadsWithPlainSpaceNotSentinel(t *testing.T) {
	out := Render(ModeWatch, "cats", "cut", Options{})
	if len(out.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(out.Lines))
	}
	spans := out.Lines[0].Spans
	if got := spans.PlainText(); got != "cut " {
		t.Fatalf("text = %q, want %q (trailing padded position rendered as a plain space)", got, "cut ")
	}
	const sentinel = '\u00A0'
	for _, sp := range spans {
		if strings.ContainsRune(sp.Text, sentinel) {
			t.Fatalf("the padRune sentinel leaked into rendered output: %+v", spans)
		}
	}
}

func TestWatchColorModeReversesPaddedTrailingSpace(t *testing.T) {
	out := Render(ModeWatch, "cats", "cut", Options{Color: true})
	spans := out.Lines[0].Spans
	last := spans[len(spans)-1]
	if last.Text != " " || !last.Style.Reverse {
		t.Fatalf("trailing padded span = %+v, want a reversed plain space", last)
	}
}

func TestLineDiffScenario(t *testing.T) {
	out := Render(ModeLine, "a\nb\nc", "a\nB\nc", Options{LineNumber: true})
	var lines []string
	for _, l := range out.Lines {
		lines = append(lines, l.Spans.PlainText())
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "1 |    a") {
		t.Fatalf("missing unchanged line 1: %q", joined)
	}
	if !strings.Contains(joined, "+  B") {
		t.Fatalf("missing add line: %q", joined)
	}
	if !strings.Contains(joined, "-  b") {
		t.Fatalf("missing rem line: %q", joined)
	}
	if !strings.Contains(joined, "3 |    c") {
		t.Fatalf("missing unchanged line 3: %q", joined)
	}
}

func TestLineDiffOnlyDiffline(t *testing.T) {
	out := Render(ModeLine, "a\nb\nc", "a\nB\nc", Options{OnlyDiffline: true})
	for _, l := range out.Lines {
		text := l.Spans.PlainText()
		if !strings.HasPrefix(text, "+  ") && !strings.HasPrefix(text, "-  ") {
			t.Fatalf("only_diffline leaked a non-diff line: %q", text)
		}
	}
	if len(out.Lines) != 2 {
		t.Fatalf("expected exactly the one add + one rem line, got %d: %+v", len(out.Lines), out.Lines)
	}
}

func TestWordDiffHighlightsChangedTokens(t *testing.T) {
	out := Render(ModeWord, "the quick fox", "the slow fox", Options{WordHighlight: true})
	var remLine, addLine string
	for _, l := range out.Lines {
		text := l.Spans.PlainText()
		if strings.HasPrefix(text, "-  ") {
			remLine = text
		}
		if strings.HasPrefix(text, "+  ") {
			addLine = text
		}
	}
	if !strings.Contains(remLine, "quick") || !strings.Contains(remLine, "the") || !strings.Contains(remLine, "fox") {
		t.Fatalf("rem line missing content: %q", remLine)
	}
	if !strings.Contains(addLine, "slow") || !strings.Contains(addLine, "the") || !strings.Contains(addLine, "fox") {
		t.Fatalf("add line missing content: %q", addLine)
	}
}

func TestWordDiffWithoutHighlightDegradesToLine(t *testing.T) {
	lineOut := Render(ModeLine, "a", "b", Options{})
	wordOut := Render(ModeWord, "a", "b", Options{WordHighlight: false})
	if plainText(lineOut) != plainText(wordOut) {
		t.Fatalf("Word without word_highlight should match Line: %q vs %q", plainText(wordOut), plainText(lineOut))
	}
}

func TestColorFalseStripsAnsi(t *testing.T) {
	out := Render(ModeNone, "", "\x1b[31mRED\x1b[0m", Options{Color: false})
	if got := plainText(out); got != "RED" {
		t.Fatalf("got %q, want RED", got)
	}
	for _, l := range out.Lines {
		for _, sp := range l.Spans {
			if sp.Style.FG.Kind != 0 {
				t.Fatalf("color=false leaked a foreground color: %+v", sp.Style)
			}
		}
	}
}

func TestTabExpansion(t *testing.T) {
	out := Render(ModeNone, "", "a\tb", Options{TabSize: 4})
	if got := plainText(out); got != "a   b" {
		t.Fatalf("tab expansion = %q, want %q", got, "a   b")
	}
}
