// Package resultstore holds the indexed, append-only execution history:
// three parallel views (output/stdout/stderr) over the same sequence of
// result.CommandResult values, each eliding entries whose stream did not
// change since that view's previous entry.
package resultstore

import (
	"sort"
	"sync"

	"github.com/hwatch-go/hwatch/internal/result"
)

// Store is confined to a single writer (the EventLoop goroutine); readers
// (the Renderer) take the read lock. This mirrors the teacher's store
// package, which is likewise single-writer-guarded by one mutex.
type Store struct {
	mu sync.RWMutex

	byOutput map[int]result.CommandResult
	byStdout map[int]result.CommandResult
	byStderr map[int]result.CommandResult

	latestOutput int
	latestStdout int
	latestStderr int
}

// New returns a Store seeded with the index-0 sentinel in every view, per
// spec.md §3.
func New() *Store {
	s := &Store{
		byOutput: make(map[int]result.CommandResult),
		byStdout: make(map[int]result.CommandResult),
		byStderr: make(map[int]result.CommandResult),
	}
	s.byOutput[0] = result.Empty()
	s.byStdout[0] = result.Empty()
	s.byStderr[0] = result.Empty()
	return s
}

// DedupeAgainstLatest reports whether r is equal (per result.CommandResult.Equal)
// to the latest entry in by_output. When true, the caller must skip Insert
// entirely: the execution contributed nothing (spec.md §4.2).
func (s *Store) DedupeAgainstLatest(r result.CommandResult) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latestOutput == 0 {
		return false
	}
	return s.byOutput[s.latestOutput].Equal(r)
}

// Insert appends r as the next by_output index, and mirrors it into
// by_stdout/by_stderr when that stream changed relative to the previous
// latest entry in the corresponding view. Returns the new index and
// whether each view changed.
func (s *Store) Insert(r result.CommandResult) (index int, stdoutChanged, stderrChanged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index = len(s.byOutput)
	s.byOutput[index] = r
	s.latestOutput = index

	prevStdout := s.byStdout[s.latestStdout]
	stdoutChanged = prevStdout.Stdout != r.Stdout
	if stdoutChanged {
		s.byStdout[index] = r
		s.latestStdout = index
	}

	prevStderr := s.byStderr[s.latestStderr]
	stderrChanged = prevStderr.Stderr != r.Stderr
	if stderrChanged {
		s.byStderr[index] = r
		s.latestStderr = index
	}

	return index, stdoutChanged, stderrChanged
}

// Get returns the result stored at index in the given view, and whether
// that index is present in that view.
func (s *Store) Get(view result.View, index int) (result.CommandResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.viewMap(view)
	r, ok := m[index]
	return r, ok
}

// Latest returns the highest index present in view.
func (s *Store) Latest(view result.View) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch view {
	case result.ViewStdout:
		return s.latestStdout
	case result.ViewStderr:
		return s.latestStderr
	default:
		return s.latestOutput
	}
}

// Previous returns the greatest index less than i present in view, or 0 if
// none exists.
func (s *Store) Previous(view result.View, i int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.viewMap(view)
	best := 0
	for idx := range m {
		if idx < i && idx > best {
			best = idx
		}
	}
	return best
}

// Nearest returns i if present in view, else Previous(view, i).
func (s *Store) Nearest(view result.View, i int) int {
	s.mu.RLock()
	_, ok := s.viewMap(view)[i]
	s.mu.RUnlock()
	if ok {
		return i
	}
	return s.Previous(view, i)
}

// Indices returns every index present in view, sorted ascending.
func (s *Store) Indices(view result.View) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.viewMap(view)
	out := make([]int, 0, len(m))
	for idx := range m {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Len returns the total number of executions recorded in by_output,
// including the index-0 sentinel.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byOutput)
}

func (s *Store) viewMap(view result.View) map[int]result.CommandResult {
	switch view {
	case result.ViewStdout:
		return s.byStdout
	case result.ViewStderr:
		return s.byStderr
	default:
		return s.byOutput
	}
}
