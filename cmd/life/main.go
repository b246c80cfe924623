//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := loadConfig(os.Args[1:])
	closeLog, err := setupLogging(cfg, false)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(board, cfg)
	w, h := game.WindowSize()

	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if cfg.Verbose {
		log.Printf("starting %dx%d board, refresh %s", cfg.Dim, cfg.Dim, cfg.Delay())
	}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
