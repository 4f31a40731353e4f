package config

import (
	"testing"

	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/keymap"
)

func TestDefaultsAreValidOnceCommandIsSet(t *testing.T) {
	cfg := Defaults()
	cfg.Command = []string{"echo", "hi"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsEmptyCommand(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestValidateRejectsNonPositiveInterval(t *testing.T) {
	cfg := Defaults()
	cfg.Command = []string{"echo"}
	cfg.Interval = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestValidateRejectsBadKeymap(t *testing.T) {
	cfg := Defaults()
	cfg.Command = []string{"echo"}
	cfg.KeymapLines = []string{"q=not_a_real_action"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for bad keymap line")
	}
}

func TestCommandString(t *testing.T) {
	cfg := Defaults()
	cfg.Command = []string{"echo", "hello", "world"}
	if got := cfg.CommandString(); got != "echo hello world" {
		t.Fatalf("CommandString() = %q", got)
	}
}

func TestBuildShellParsesTemplate(t *testing.T) {
	cfg := Defaults()
	shell := cfg.BuildShell()
	if shell.Path != "sh" || len(shell.Args) != 2 || shell.Args[1] != "{COMMAND}" {
		t.Fatalf("BuildShell() = %+v", shell)
	}
}

func TestParseDiffMode(t *testing.T) {
	cases := map[string]diffengine.Mode{
		"":     diffengine.ModeNone,
		"none": diffengine.ModeNone,
		"watch": diffengine.ModeWatch,
		"line":  diffengine.ModeLine,
		"word":  diffengine.ModeWord,
	}
	for in, want := range cases {
		got, err := ParseDiffMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseDiffMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDiffMode("bogus"); err == nil {
		t.Fatalf("expected error for unknown diff mode")
	}
}

func TestResolveKeymapAppliesOverride(t *testing.T) {
	cfg := Defaults()
	cfg.Command = []string{"echo"}
	cfg.KeymapLines = []string{"x=quit"}
	m := cfg.ResolveKeymap()

	x, _ := keymap.ParseKey("x")
	if a, ok := m.Lookup(x); !ok || a != keymap.Quit {
		t.Fatalf("x -> %v, %v; want Quit", a, ok)
	}
	q, _ := keymap.ParseKey("q")
	if a, ok := m.Lookup(q); !ok || a != keymap.Quit {
		t.Fatalf("default q -> %v, %v; want Quit unaffected", a, ok)
	}
}
