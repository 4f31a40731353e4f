package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hwatch-go/hwatch/internal/afterhook"
	"github.com/hwatch-go/hwatch/internal/config"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/resultstore"
)

func newTestLoop(t *testing.T, command string) *eventloop.Loop {
	t.Helper()
	cfg := config.Defaults()
	cfg.Command = []string{command}
	store := resultstore.New()
	ex := executor.New(executor.DefaultShell(), false)
	return eventloop.New(cfg, store, ex, afterhook.Hook{}, nil)
}

func TestTranslateKeyBasicTokens(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want keymap.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, keymap.Key{Code: "up"}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, keymap.Key{Code: "c", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, keymap.Key{Code: "q"}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("O")}, keymap.Key{Code: "o", Shift: true}},
	}
	for _, c := range cases {
		got, ok := translateKey(c.msg)
		if !ok {
			t.Fatalf("translateKey(%v) not ok", c.msg)
		}
		if got != c.want {
			t.Fatalf("translateKey(%v) = %+v, want %+v", c.msg, got, c.want)
		}
	}
}

func TestTranslateMouseWheel(t *testing.T) {
	up, ok := translateMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if !ok || up.Code != "scroll_up" {
		t.Fatalf("wheel up -> %+v, %v", up, ok)
	}
}

func TestIsWatchPaneAction(t *testing.T) {
	if !isWatchPaneAction(keymap.WatchPaneUp) {
		t.Fatalf("expected WatchPaneUp to be a watch-pane action")
	}
	if isWatchPaneAction(keymap.Up) {
		t.Fatalf("plain Up must not be treated as a watch-pane action")
	}
}

func TestScrollbarThumbFillsTrackWhenContentFits(t *testing.T) {
	start, end := scrollbarThumb(10, 5, 10, 0)
	if start != 0 || end != 10 {
		t.Fatalf("scrollbarThumb = (%d,%d), want full track when content fits", start, end)
	}
}

func TestScrollbarThumbShrinksForLongContent(t *testing.T) {
	start, end := scrollbarThumb(10, 100, 10, 0)
	if start != 0 {
		t.Fatalf("start = %d, want 0 at top", start)
	}
	if end-start >= 10 {
		t.Fatalf("thumb size %d should be smaller than the track for long content", end-start)
	}
}

func TestWatchContentRendersDiffOfLatestAgainstPrevious(t *testing.T) {
	l := newTestLoop(t, "echo hwatch-tui")
	l.Tick(context.Background())
	got := watchContent(l.Snapshot(), l.Store())
	if !strings.Contains(got, "hwatch-tui") {
		t.Fatalf("watchContent = %q, want it to contain the command output", got)
	}
}

func TestModelInitSchedulesATick(t *testing.T) {
	l := newTestLoop(t, "echo hi")
	m := New(l, keymap.DefaultMap())
	if m.Init() == nil {
		t.Fatalf("Init() returned a nil command, want a scheduled tick")
	}
}

func TestTickMsgRunsOverlappedAndDeliversResultMsg(t *testing.T) {
	l := newTestLoop(t, "echo hwatch-overlap")
	m := New(l, keymap.DefaultMap())

	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("tickMsg must still schedule the next tick")
	}

	select {
	case got := <-m.results:
		if !got.accepted {
			t.Fatalf("expected the tick to be accepted")
		}
	case <-time.After(time.Second):
		t.Fatalf("runTick never posted a resultMsg")
	}
}

func TestResultMsgSyncsWatchContentWhenAccepted(t *testing.T) {
	l := newTestLoop(t, "echo hwatch-overlap")
	m := New(l, keymap.DefaultMap())
	l.Tick(context.Background())

	updated, cmd := m.Update(resultMsg{accepted: true})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("resultMsg must re-issue waitForResult")
	}
	if !strings.Contains(m.watch.View(), "hwatch-overlap") {
		t.Fatalf("watch content was not synced after an accepted resultMsg")
	}
}

func TestHandleKeyQuitRequestsExit(t *testing.T) {
	l := newTestLoop(t, "echo hi")
	m := New(l, keymap.DefaultMap())
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a tea.Quit command")
	}
}
