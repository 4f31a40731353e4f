// Command hwatch periodically runs a command and renders how its output
// changes over time, interactively or in batch mode (spec.md §1).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/hwatch-go/hwatch/internal/afterhook"
	"github.com/hwatch-go/hwatch/internal/batch"
	"github.com/hwatch-go/hwatch/internal/buildinfo"
	"github.com/hwatch-go/hwatch/internal/config"
	"github.com/hwatch-go/hwatch/internal/debug"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/executor"
	"github.com/hwatch-go/hwatch/internal/logfile"
	"github.com/hwatch-go/hwatch/internal/resultstore"
	"github.com/hwatch-go/hwatch/internal/tui"
)

func main() {
	var debugEnabled bool

	cmd := config.NewRootCommand(func(cfg config.Config) error {
		return runHwatch(cfg, debugEnabled)
	})
	cmd.Version = buildinfo.Current().Version
	cmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "write a structured debug log to ~/.hwatch/debug/")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHwatch(cfg config.Config, debugEnabled bool) error {
	if debugEnabled {
		path, err := debug.Init()
		if err != nil {
			return err
		}
		defer debug.Close()
		debug.LogKV("main", "debug log opened", "path", path)
	}

	log, err := logfile.Open(cfg.Logfile)
	if err != nil {
		return err
	}
	defer log.Close()

	store := resultstore.New()
	ex := executor.New(cfg.BuildShell(), cfg.Exec)
	hook := afterhook.Hook{Command: cfg.AfterCommand, Shell: cfg.Shell}
	loop := eventloop.New(cfg, store, ex, hook, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if cfg.Batch || !isatty.IsTerminal(os.Stdout.Fd()) {
		return batch.Run(ctx, os.Stdout, loop)
	}
	if !cfg.NoHelpBanner {
		fmt.Fprintln(os.Stderr, "hwatch: press h for help, q to quit")
	}
	return tui.Run(loop, cfg.ResolveKeymap())
}
