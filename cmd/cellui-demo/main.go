// cellui-demo shows the toolkit: a small form with text and decimal input,
// a scrollable history, popups and the log panel.
//
// Run with: go run ./cmd/cellui-demo -backend ansi
//
// Tab and Shift+Tab move the focus, Escape asks to quit, Ctrl+L shows the
// captured output.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/germtb/cellui"
	"github.com/germtb/cellui/backend"
	"github.com/germtb/cellui/internal/config"
	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cellui-demo:", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "cellui-demo:", err)
		os.Exit(1)
	}
}

func newTerminal(cfg config.Config) (cellui.Terminal, error) {
	switch cfg.Backend {
	case config.BackendANSI:
		return backend.NewANSI(backend.ANSIOptions{}), nil
	default:
		return backend.NewTcell()
	}
}

func run(cfg config.Config) error {
	// The backend binds stdout before the log capture replaces it.
	term, err := newTerminal(cfg)
	if err != nil {
		return err
	}

	var logs *cellui.LogCapture
	if cfg.Logs {
		logs = cellui.NewLogCapture(0)
		if err := logs.Start(); err != nil {
			return errors.Wrap(err, "capture output")
		}
		defer logs.Stop()
	}

	s := cellui.NewScheduler(term, cellui.Options{
		FrameInterval: cfg.FrameInterval(),
		Logs:          logs,
		LogLines:      cfg.LogLines,
	})

	d := &demo{sched: s}
	content, err := cellui.Build(gox.Element(gox.Component(d.App), gox.Props{"debug": cfg.Debug}))
	if err != nil {
		return errors.Wrap(err, "build ui")
	}
	s.Push(cellui.NewRoot(content))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go d.tickClock(ctx)

	err = s.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
