//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/FedExRU/life-the-game/internal/app"
	"github.com/FedExRU/life-the-game/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl := sim.New(time.Duration(cfg.IntervalMS)*time.Millisecond, cfg.Seed)
	if err := ctrl.Generate(cfg.Size); err != nil {
		log.Fatalf("generate: %v", err)
	}
	if cfg.Randomize {
		if err := ctrl.Randomize(); err != nil {
			log.Fatalf("randomize: %v", err)
		}
	}
	defer ctrl.Stop()

	game := app.New(ctrl, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-the-game")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
