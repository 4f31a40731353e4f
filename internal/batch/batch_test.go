package batch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hwatch-go/hwatch/internal/afterhook"
	"github.com/hwatch-go/hwatch/internal/config"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/resultstore"
)

func newLoop(t *testing.T, command string) *eventloop.Loop {
	t.Helper()
	cfg := config.Defaults()
	cfg.Command = []string{command}
	store := resultstore.New()
	ex := executor.New(executor.DefaultShell(), false)
	return eventloop.New(cfg, store, ex, afterhook.Hook{}, nil)
}

func TestWriteResultPrintsSeparatorAndBody(t *testing.T) {
	l := newLoop(t, "echo hwatch-batch")
	r, accepted := l.Tick(context.Background())
	if !accepted {
		t.Fatalf("expected first tick to be accepted")
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, l, r); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}

	out := buf.String()
	lines := strings.SplitN(out, "\n", 2)
	if !strings.HasPrefix(lines[0], "=====["+r.Timestamp+"]") {
		t.Fatalf("separator line = %q, want prefix =====[%s]", lines[0], r.Timestamp)
	}
	if !strings.Contains(out, "hwatch-batch") {
		t.Fatalf("body missing command output: %q", out)
	}
}

func TestSeparatorLineIsPadded(t *testing.T) {
	line := separatorLine("2026-07-31 00:00:00.000")
	if !strings.HasPrefix(line, "=====[2026-07-31 00:00:00.000]") {
		t.Fatalf("unexpected prefix: %q", line)
	}
	if !strings.HasSuffix(line, "=") {
		t.Fatalf("expected trailing '=' padding, got %q", line)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	l := newLoop(t, "echo hwatch-batch")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := Run(ctx, &buf, l); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "hwatch-batch") {
		t.Fatalf("expected the initial tick to run before ctx cancellation was observed")
	}
}
