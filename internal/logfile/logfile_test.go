package logfile

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/hwatch-go/hwatch/internal/result"
)

func TestWriteAppendsOneJSONObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwatch.jsonl")
	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	if err := w.Write(result.New("echo a", true, "a\n", "a\n", "")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(result.New("echo b", true, "b\n", "b\n", "")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	w.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var lines int
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 JSON lines, got %d", lines)
	}
}

func TestNilWriterIsANoOp(t *testing.T) {
	var w *Writer
	if err := w.Write(result.Empty()); err != nil {
		t.Fatalf("nil Writer.Write should be a no-op, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("nil Writer.Close should be a no-op, got %v", err)
	}
}

func TestOpenEmptyPathReturnsNilWriter(t *testing.T) {
	w, err := Open("")
	if err != nil || w != nil {
		t.Fatalf("Open(\"\") = %v, %v; want nil, nil", w, err)
	}
}
