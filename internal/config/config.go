// Package config defines hwatch's CLI surface (spec.md §6) and the
// resulting Config value object, grounded on the teacher's cobra/pflag
// root-command convention and its explicit Validate() error pattern.
package config

import (
	"fmt"

	"github.com/hwatch-go/hwatch/internal/diffengine"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/keymap"
)

// ConfigError reports a configuration problem detected before the UI
// starts (spec.md §7).
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Config is the fully-resolved set of run options for one hwatch
// invocation.
type Config struct {
	Command []string

	Interval     float64
	TabSize      uint16
	Color        bool
	Reverse      bool
	LineNumber   bool
	DiffMode     diffengine.Mode
	OnlyDiffline bool
	WordHighlight bool

	Exec  bool
	Shell string

	AfterCommand string
	Logfile      string

	Batch        bool
	NoHelpBanner bool
	MouseEvents  bool
	Border       bool
	ScrollBar    bool
	Beep         bool

	KeymapLines []string
}

// Defaults returns the baseline configuration before flags are applied,
// matching spec.md §6's documented defaults.
func Defaults() Config {
	return Config{
		Interval:      2.0,
		TabSize:       8,
		Color:         true,
		WordHighlight: true,
		Shell:         "sh -c {COMMAND}",
		DiffMode:      diffengine.ModeNone,
	}
}

// CommandString joins the positional command... arguments into the single
// string the Executor and AfterHook operate on.
func (c Config) CommandString() string {
	s := ""
	for i, a := range c.Command {
		if i > 0 {
			s += " "
		}
		s += a
	}
	return s
}

// BuildShell resolves the Shell template string (e.g. "sh -c {COMMAND}")
// into an executor.Shell. Ignored by the Executor when Exec is set, since
// direct-exec mode runs the command argv literally instead.
func (c Config) BuildShell() executor.Shell {
	fields := splitFields(c.Shell)
	if len(fields) == 0 {
		return executor.DefaultShell()
	}
	return executor.Shell{Path: fields[0], Args: fields[1:]}
}

func splitFields(s string) []string {
	var out []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, s[i])
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

// Validate checks the resolved configuration, returning a *ConfigError on
// the first problem found (spec.md §7).
func (c Config) Validate() error {
	if len(c.Command) == 0 {
		return configErrorf("hwatch: no command given")
	}
	if c.Interval <= 0 {
		return configErrorf("hwatch: --interval must be positive, got %v", c.Interval)
	}
	if _, err := keymap.ParseConfig(c.KeymapLines); err != nil {
		return configErrorf("hwatch: invalid --keymap: %v", err)
	}
	return nil
}

// ResolveKeymap builds the effective key map: defaults overridden by any
// --keymap lines. Assumes Validate already accepted KeymapLines.
func (c Config) ResolveKeymap() keymap.Map {
	overrides, _ := keymap.ParseConfig(c.KeymapLines)
	return keymap.Merge(keymap.DefaultMap(), overrides)
}

// ParseDiffMode maps the --differences flag value to a diffengine.Mode.
func ParseDiffMode(s string) (diffengine.Mode, error) {
	switch s {
	case "", "none":
		return diffengine.ModeNone, nil
	case "watch":
		return diffengine.ModeWatch, nil
	case "line":
		return diffengine.ModeLine, nil
	case "word":
		return diffengine.ModeWord, nil
	default:
		return diffengine.ModeNone, configErrorf("hwatch: unknown --differences value %q", s)
	}
}
