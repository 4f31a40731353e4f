package eventloop

import (
	"context"
	"testing"

	"github.com/hwatch-go/hwatch/internal/afterhook"
	"github.com/hwatch-go/hwatch/internal/config"
	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/result"
	"github.com/hwatch-go/hwatch/internal/resultstore"
)

func newLoop(t *testing.T, command string) *Loop {
	t.Helper()
	cfg := config.Defaults()
	cfg.Command = []string{command}
	store := resultstore.New()
	ex := executor.New(executor.DefaultShell(), false)
	return New(cfg, store, ex, afterhook.Hook{}, nil)
}

func TestTickInsertsNewResultOnce(t *testing.T) {
	l := newLoop(t, "echo hwatch-test")
	ctx := context.Background()

	_, accepted := l.Tick(ctx)
	if !accepted {
		t.Fatalf("expected first tick to be accepted")
	}
	_, accepted = l.Tick(ctx)
	if accepted {
		t.Fatalf("expected second identical tick to be deduped")
	}
	if l.Store().Len() != 2 { // sentinel + one accepted result
		t.Fatalf("Store().Len() = %d, want 2", l.Store().Len())
	}
}

func TestTickSkippedWhenPaused(t *testing.T) {
	l := newLoop(t, "echo hwatch-test")
	l.State.Paused = true
	_, accepted := l.Tick(context.Background())
	if accepted {
		t.Fatalf("expected paused tick to never be accepted")
	}
	if l.Store().Len() != 1 {
		t.Fatalf("Store().Len() = %d, want 1 (sentinel only)", l.Store().Len())
	}
}

func TestDispatchQuitReturnsTrue(t *testing.T) {
	l := newLoop(t, "echo hi")
	if !l.Dispatch(keymap.Quit) {
		t.Fatalf("expected Quit to request exit")
	}
	if !l.Snapshot().Quit {
		t.Fatalf("expected State.Quit to be set")
	}
}

func TestDispatchToggleDiffModeCycles(t *testing.T) {
	l := newLoop(t, "echo hi")
	start := l.Snapshot().DiffMode
	if start != diffengine.ModeNone {
		t.Fatalf("expected default ModeNone, got %v", start)
	}
	l.Dispatch(keymap.ToggleDiffMode)
	if got := l.Snapshot().DiffMode; got != diffengine.ModeWatch {
		t.Fatalf("after one cycle = %v, want ModeWatch", got)
	}
}

func TestDispatchSetOutputMode(t *testing.T) {
	l := newLoop(t, "echo hi")
	l.Dispatch(keymap.SetOutputModeStderr)
	if got := l.Snapshot().OutputView; got != result.ViewStderr {
		t.Fatalf("OutputView = %v, want ViewStderr", got)
	}
}

func TestDispatchToggleViewPaneUIHidesHeaderAndHistoryTogether(t *testing.T) {
	l := newLoop(t, "echo hi")
	st := l.Snapshot()
	if !st.ShowHeader || !st.ShowHistory {
		t.Fatalf("expected header and history visible by default")
	}
	l.Dispatch(keymap.ToggleViewPaneUI)
	st = l.Snapshot()
	if st.ShowHeader || st.ShowHistory {
		t.Fatalf("expected ToggleViewPaneUI to hide both header and history, got %+v", st)
	}
	l.Dispatch(keymap.ToggleViewPaneUI)
	st = l.Snapshot()
	if !st.ShowHeader || !st.ShowHistory {
		t.Fatalf("expected a second ToggleViewPaneUI to show both again")
	}
}

func TestDispatchToggleViewHistoryPaneOnlyAffectsHistory(t *testing.T) {
	l := newLoop(t, "echo hi")
	l.Dispatch(keymap.ToggleViewHistoryPane)
	st := l.Snapshot()
	if st.ShowHistory {
		t.Fatalf("expected history hidden")
	}
	if !st.ShowHeader {
		t.Fatalf("expected header untouched by ToggleViewHistoryPane")
	}
}

func TestDispatchToggleBorderAndScrollBar(t *testing.T) {
	l := newLoop(t, "echo hi")
	before := l.Snapshot()
	l.Dispatch(keymap.ToggleBorder)
	l.Dispatch(keymap.ToggleScrollBar)
	after := l.Snapshot()
	if after.Border == before.Border {
		t.Fatalf("expected ToggleBorder to flip Border")
	}
	if after.ScrollBar == before.ScrollBar {
		t.Fatalf("expected ToggleScrollBar to flip ScrollBar")
	}
}

func TestSetFilterRejectsInvalidRegexKeepingPriorFilter(t *testing.T) {
	l := newLoop(t, "echo hi")
	if !l.SetFilter("err", false) {
		t.Fatalf("expected literal filter to apply")
	}
	if l.SetFilter("(unclosed", true) {
		t.Fatalf("expected invalid regex to be rejected")
	}
	if got := l.Snapshot().Filter.Text(); got != "err" {
		t.Fatalf("filter was clobbered by a rejected apply: %q", got)
	}
}

func TestIntervalMinusDoesNotGoNonPositive(t *testing.T) {
	l := newLoop(t, "echo hi")
	for i := 0; i < 10; i++ {
		l.Dispatch(keymap.IntervalMinus)
	}
	if got := l.Snapshot().IntervalSeconds; got <= 0 {
		t.Fatalf("IntervalSeconds = %v, want > 0", got)
	}
}
