//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"life-tiles/internal/app"
	"life-tiles/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	view := app.NewView()
	clock := core.NewFixedStep()
	sess, closeStore, err := app.OpenSession(context.Background(), cfg, clock, view, nil)
	if err != nil {
		log.Fatalf("open session: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	game := app.New(sess, view, clock, cfg)
	w, h := game.Size()

	ebiten.SetWindowTitle("life-tiles")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
