package eventloop

import (
	"context"
	"sync"

	"github.com/hwatch-go/hwatch/internal/afterhook"
	"github.com/hwatch-go/hwatch/internal/config"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/filter"
	"github.com/hwatch-go/hwatch/internal/logfile"
	"github.com/hwatch-go/hwatch/internal/result"
	"github.com/hwatch-go/hwatch/internal/resultstore"
)

// Loop is the single dispatcher: it owns State and the ResultStore and
// exposes synchronous methods for a caller's own event source. The
// interactive renderer calls Dispatch and SetFilter from Bubble Tea's
// Update and runs each Tick in its own goroutine (internal/tui); the
// batch renderer calls Tick from a plain timer loop (internal/batch).
//
// Grounded on internal/runtui/run.go's single-goroutine-owns-state shape,
// adapted from a channel-fed dispatcher to direct calls since Bubble
// Tea's tea.Program already serializes the interactive path's "input
// reader" and "redraw" responsibilities (spec.md §4.6).
type Loop struct {
	mu sync.Mutex

	cfg   config.Config
	store *resultstore.Store
	exec  *executor.Executor
	hook  afterhook.Hook
	log   *logfile.Writer

	State State
}

// New builds a Loop seeded from cfg's initial selection state.
func New(cfg config.Config, store *resultstore.Store, ex *executor.Executor, hook afterhook.Hook, log *logfile.Writer) *Loop {
	return &Loop{
		cfg:   cfg,
		store: store,
		exec:  ex,
		hook:  hook,
		log:   log,
		State: State{
			OutputView:      result.ViewOutput,
			DiffMode:        cfg.DiffMode,
			Color:           cfg.Color,
			LineNumber:      cfg.LineNumber,
			Reverse:         cfg.Reverse,
			OnlyDiffline:    cfg.OnlyDiffline,
			WordHighlight:   cfg.WordHighlight,
			TabSize:         int(cfg.TabSize),
			IntervalSeconds: cfg.Interval,
			MouseEvents:     cfg.MouseEvents,
			Border:          cfg.Border,
			ScrollBar:       cfg.ScrollBar,
			Beep:            cfg.Beep,
			ShowHeader:      true,
			ShowHistory:     true,
		},
	}
}

// Snapshot returns a copy of the current selection state.
func (l *Loop) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.State
}

// Tick runs the watched command once, inserts the result into the
// ResultStore if it differs from the latest, fires the after-hook and
// logfile write on acceptance, and returns the result plus whether it was
// a new (non-duplicate) entry.
func (l *Loop) Tick(ctx context.Context) (result.CommandResult, bool) {
	r := l.exec.Run(ctx, l.cfg.CommandString())

	l.mu.Lock()
	paused := l.State.Paused
	l.mu.Unlock()
	if paused {
		return r, false
	}

	dup := l.store.DedupeAgainstLatest(r)
	if dup {
		return r, false
	}

	beforeIdx := l.store.Latest(result.ViewOutput)
	before, _ := l.store.Get(result.ViewOutput, beforeIdx)
	l.store.Insert(r)

	if l.log != nil {
		_ = l.log.Write(r)
	}
	l.hook.Fire(before, r)

	return r, true
}

// SetFilter compiles and applies (text, isRegex) as the active filter.
// On a compile error the existing filter is left untouched and false is
// returned (spec.md §4.5, §7).
func (l *Loop) SetFilter(text string, isRegex bool) bool {
	p, ok := filter.Compile(text, isRegex)
	if !ok {
		return false
	}
	l.mu.Lock()
	l.State.Filter = p
	l.mu.Unlock()
	return true
}

// VisibleIndices returns the history indices visible under the current
// filter and output view, always including the index-0 sentinel.
func (l *Loop) VisibleIndices() []int {
	l.mu.Lock()
	view := l.State.OutputView
	pred := l.State.Filter
	l.mu.Unlock()

	indices := l.store.Indices(view)
	return filter.Visible(indices, func(i int) string {
		r, _ := l.store.Get(view, i)
		return r.Body(view)
	}, pred)
}

// Store exposes the underlying ResultStore for renderer reads.
func (l *Loop) Store() *resultstore.Store {
	return l.store
}
