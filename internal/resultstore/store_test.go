package resultstore

import (
	"testing"

	"github.com/hwatch-go/hwatch/internal/result"
)

func mk(cmd string, status bool, out, stdout, stderr string) result.CommandResult {
	return result.CommandResult{Command: cmd, Status: status, Output: out, Stdout: stdout, Stderr: stderr}
}

func TestInsertAssignsDenseIndices(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		idx, _, _ := s.Insert(mk("cmd", true, "a", "a", ""))
		if idx != i+1 {
			t.Fatalf("insert %d: index = %d, want %d", i, idx, i+1)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestStdoutViewElidesUnchangedStdout(t *testing.T) {
	s := New()
	// stdout never changes; stderr flickers.
	s.Insert(mk("cmd", true, "o1", "same", "e1"))
	s.Insert(mk("cmd", true, "o2", "same", "e2"))
	s.Insert(mk("cmd", true, "o3", "same", "e3"))

	stdoutIdx := s.Indices(result.ViewStdout)
	if len(stdoutIdx) != 2 { // sentinel 0 + first real insert
		t.Fatalf("by_stdout indices = %v, want len 2 (sentinel + first change)", stdoutIdx)
	}

	stderrIdx := s.Indices(result.ViewStderr)
	if len(stderrIdx) != 4 { // sentinel + 3 changes
		t.Fatalf("by_stderr indices = %v, want len 4", stderrIdx)
	}
}

func TestByOutputIsTotalOrder(t *testing.T) {
	s := New()
	n := 5
	for i := 0; i < n; i++ {
		s.Insert(mk("cmd", true, "x", "x", "x"))
	}
	idx := s.Indices(result.ViewOutput)
	if len(idx) != n+1 {
		t.Fatalf("by_output indices = %v, want len %d", idx, n+1)
	}
	for i, v := range idx {
		if v != i {
			t.Fatalf("by_output indices not dense 0..n: %v", idx)
		}
	}
}

func TestLatestPreviousNearest(t *testing.T) {
	s := New()
	s.Insert(mk("cmd", true, "a", "a", "")) // index 1, stdout changes
	s.Insert(mk("cmd", true, "b", "a", "")) // index 2, stdout unchanged -> not in by_stdout
	s.Insert(mk("cmd", true, "c", "c", "")) // index 3, stdout changes

	if got := s.Latest(result.ViewStdout); got != 3 {
		t.Fatalf("Latest(stdout) = %d, want 3", got)
	}
	if got := s.Previous(result.ViewStdout, 3); got != 1 {
		t.Fatalf("Previous(stdout, 3) = %d, want 1", got)
	}
	if got := s.Nearest(result.ViewStdout, 2); got != 1 {
		t.Fatalf("Nearest(stdout, 2) = %d, want 1 (2 absent, falls back to previous)", got)
	}
	if got := s.Nearest(result.ViewStdout, 3); got != 3 {
		t.Fatalf("Nearest(stdout, 3) = %d, want 3 (present)", got)
	}
}

func TestDedupeAgainstLatest(t *testing.T) {
	s := New()
	r := mk("echo hi", true, "hi\n", "hi\n", "")
	s.Insert(r)

	if !s.DedupeAgainstLatest(r) {
		t.Fatalf("expected dedupe to report equal result as duplicate")
	}
	different := mk("echo hi", true, "hi again\n", "hi again\n", "")
	if s.DedupeAgainstLatest(different) {
		t.Fatalf("expected dedupe to report changed result as not duplicate")
	}
}

func TestIdempotentInsertYieldsOneNewIndexWhenCallerDedupes(t *testing.T) {
	s := New()
	r := mk("echo hi", true, "hi\n", "hi\n", "")
	s.Insert(r)
	before := s.Len()

	// The EventLoop is responsible for calling DedupeAgainstLatest before
	// Insert; Insert itself always appends. This test documents that
	// contract: skipping the second Insert when DedupeAgainstLatest is true
	// keeps Len() unchanged.
	if !s.DedupeAgainstLatest(r) {
		t.Fatalf("expected duplicate")
	}
	if s.Len() != before {
		t.Fatalf("Len() changed without an Insert call")
	}
}
