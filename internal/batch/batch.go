// Package batch implements the non-interactive renderer: a plain ticker
// loop that writes each accepted result straight to stdout instead of
// driving a Bubble Tea program (spec.md §4.7's "batch path bypasses
// areas").
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/result"
	"github.com/hwatch-go/hwatch/internal/theme"
)

// Run ticks the loop at its configured interval until ctx is canceled,
// writing a separator line and the diffed output to w for every accepted
// (non-duplicate) result.
func Run(ctx context.Context, w io.Writer, l *eventloop.Loop) error {
	if _, _, err := tick(ctx, w, l); err != nil {
		return err
	}
	for {
		interval := l.Snapshot().IntervalSeconds
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(interval * float64(time.Second))):
		}
		if _, _, err := tick(ctx, w, l); err != nil {
			return err
		}
	}
}

func tick(ctx context.Context, w io.Writer, l *eventloop.Loop) (result.CommandResult, bool, error) {
	r, accepted := l.Tick(ctx)
	if !accepted {
		return r, false, nil
	}
	if err := WriteResult(w, l, r); err != nil {
		return r, true, err
	}
	return r, true, nil
}

// WriteResult prints one separator line followed by the current
// DiffEngine rendering of r against the previous accepted result, per
// spec.md §4.7: "print a separator line ... then the DiffEngine output
// joined by newlines, then flush."
func WriteResult(w io.Writer, l *eventloop.Loop, r result.CommandResult) error {
	st := l.Snapshot()

	sep := separatorLine(r.Timestamp)
	if st.Color {
		sep = theme.StatusDim.Render(sep)
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}

	store := l.Store()
	prevIdx := store.Previous(st.OutputView, store.Latest(st.OutputView))
	prev, _ := store.Get(st.OutputView, prevIdx)

	out := diffengine.Render(st.DiffMode, prev.Body(st.OutputView), r.Body(st.OutputView), st.DiffOptions())
	for _, line := range out.PlainLines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func separatorLine(timestamp string) string {
	prefix := fmt.Sprintf("=====[%s]", timestamp)
	const width = 60
	if len(prefix) >= width {
		return prefix
	}
	padding := make([]byte, width-len(prefix))
	for i := range padding {
		padding[i] = '='
	}
	return prefix + string(padding)
}
