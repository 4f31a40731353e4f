// Package logfile appends each accepted CommandResult to a JSON-lines
// file (spec.md §6's "Logfile format"), grounded on the teacher's
// append-only recorder convention.
package logfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hwatch-go/hwatch/internal/result"
)

// Writer appends one JSON object per line to an open file, matching
// spec.md §6: "append-only; each accepted result serialized as one JSON
// object per line with keys timestamp, command, status, output, stdout,
// stderr."
type Writer struct {
	mu sync.Mutex
	f  *os.File
	enc *json.Encoder
}

// Open appends to (creating if needed) the file at path. Passing an empty
// path returns a nil *Writer whose Write/Close are no-ops, so callers can
// unconditionally defer Close without checking whether logging was
// requested.
func Open(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logfile: open %s: %w", path, err)
	}
	return &Writer{f: f, enc: json.NewEncoder(f)}, nil
}

// Write appends r as one JSON-lines record. Safe to call on a nil
// receiver (no logfile configured).
func (w *Writer) Write(r result.CommandResult) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(r)
}

// Close closes the underlying file. Safe to call on a nil receiver.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return w.f.Close()
}
