//go:build !ebiten

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifegrid/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := loadConfig(os.Args[1:])
	closeLog, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialise terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := term.NewApp(screen, board, cfg.Delay(), cfg.Verbose)
	log.Printf("starting %dx%d board, refresh %s", cfg.Dim, cfg.Dim, cfg.Delay())
	err = a.Run(ctx)
	log.Printf("exited at generation %d", a.Controller().Generation())
	return err
}
