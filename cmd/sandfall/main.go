//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/juju/loggo"

	"sandfall/internal/app"
	"sandfall/internal/sand"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("sandfall")
	p.Description = "Falling-sand cellular automaton. Left click paints, right click erases, 0-9 pick a kind."
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}
	if err := loggo.ConfigureLoggers(cfg.LoggingSpec()); err != nil {
		log.Fatal(err)
	}

	sc, err := cfg.SandConfig()
	if err != nil {
		log.Fatal(err)
	}
	world := sand.NewWithConfig(sc)
	world.Reset(0)

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall - " + sc.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
