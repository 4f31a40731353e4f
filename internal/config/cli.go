package config

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the cobra command that parses hwatch's CLI
// surface (spec.md §6) into cfg. run is invoked with the fully-resolved,
// already-validated Config once flags and positional args are parsed.
func NewRootCommand(run func(Config) error) *cobra.Command {
	cfg := Defaults()
	var noColor bool
	var diffMode string
	var keymapSpecs []string

	cmd := &cobra.Command{
		Use:           "hwatch [flags] -- command [args...]",
		Short:         "periodically run a command and diff its output over time",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Command = args
			if noColor {
				cfg.Color = false
			}
			mode, err := ParseDiffMode(diffMode)
			if err != nil {
				return err
			}
			cfg.DiffMode = mode
			lines, err := loadKeymapFiles(keymapSpecs)
			if err != nil {
				return err
			}
			cfg.KeymapLines = lines
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&cfg.Interval, "interval", cfg.Interval, "seconds between executions")
	flags.Uint16Var(&cfg.TabSize, "tab-size", cfg.TabSize, "tab stop width used to expand \\t before diffing")
	flags.BoolVar(&cfg.Color, "color", cfg.Color, "preserve ANSI color in captured output")
	flags.BoolVar(&noColor, "no-color", false, "strip ANSI color from captured output")
	flags.BoolVar(&cfg.Reverse, "reverse", cfg.Reverse, "reverse the line order of the watch pane")
	flags.BoolVar(&cfg.LineNumber, "line-number", cfg.LineNumber, "prefix rendered lines with line numbers")
	flags.StringVar(&diffMode, "differences", "none", "diff mode: none|watch|line|word")
	flags.BoolVar(&cfg.OnlyDiffline, "only-diffline", cfg.OnlyDiffline, "in line/word mode, suppress unchanged lines")
	flags.BoolVar(&cfg.Exec, "exec", cfg.Exec, "run the command directly, bypassing the shell template")
	flags.StringVar(&cfg.Shell, "shell", cfg.Shell, "shell template, {COMMAND} substituted with the watched command")
	flags.StringVar(&cfg.AfterCommand, "after-command", cfg.AfterCommand, "command run after each accepted result change")
	flags.StringVar(&cfg.Logfile, "logfile", cfg.Logfile, "append-only JSON-lines log of accepted results")
	flags.BoolVar(&cfg.Batch, "batch", cfg.Batch, "force non-interactive output even on a tty")
	flags.BoolVar(&cfg.NoHelpBanner, "no-help-banner", cfg.NoHelpBanner, "suppress the startup help banner")
	flags.BoolVar(&cfg.MouseEvents, "mouse-events", cfg.MouseEvents, "enable mouse capture in the interactive UI")
	flags.BoolVar(&cfg.Border, "border", cfg.Border, "draw pane borders in the interactive UI")
	flags.BoolVar(&cfg.ScrollBar, "scroll-bar", cfg.ScrollBar, "draw a scrollbar thumb in the watch pane")
	flags.BoolVar(&cfg.Beep, "beep", cfg.Beep, "emit a bell (0x07) to stdout on each accepted change")
	flags.StringArrayVar(&keymapSpecs, "keymap", nil, "path to an INI-style key=action override file, may be repeated")

	return cmd
}

// loadKeymapFiles reads every --keymap path and concatenates their lines,
// in flag order, for keymap.ParseConfig.
func loadKeymapFiles(paths []string) ([]string, error) {
	var lines []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, configErrorf("hwatch: reading --keymap file %q: %v", p, err)
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	return lines, nil
}
