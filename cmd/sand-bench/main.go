package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/integrii/flaggy"
	"github.com/juju/loggo"
	"github.com/logrusorgru/aurora"

	"sandfall/internal/bench"
	"sandfall/internal/sand"
)

func main() {
	cfg := sand.DefaultConfig()
	cfg.Seed = 1
	steps := 500
	runs := 8
	workers := runtime.NumCPU()
	color := true
	debug := false

	p := flaggy.NewParser("sand-bench")
	p.Description = "Runs seeded sand worlds headlessly and reports timing and census drift."
	p.ShowHelpOnUnexpected = false
	p.String(&cfg.Scene, "", "scene", "Initial layout")
	p.Int(&cfg.Width, "x", "width", "Width of the universe in cells")
	p.Int(&cfg.Height, "y", "height", "Height of the universe in cells")
	p.Int64(&cfg.Seed, "", "seed", "First seed; runs use consecutive seeds")
	p.Int(&steps, "s", "steps", "Ticks to simulate per run")
	p.Int(&runs, "n", "runs", "Number of seeded runs")
	p.Int(&workers, "w", "workers", "Number of worker goroutines")
	p.Bool(&color, "", "color", "Colorize the report")
	p.Bool(&debug, "d", "debug", "Enable debug logging")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}
	spec := "<root>=INFO"
	if debug {
		spec = "<root>=DEBUG"
	}
	if err := loggo.ConfigureLoggers(spec); err != nil {
		log.Fatal(err)
	}

	seeds, err := bench.Seeds(cfg.Seed, runs)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	au := aurora.NewAurora(color)
	fmt.Printf("Running %s on %dx%d (%d runs, %d workers, %d steps)\n",
		au.Bold(cfg.Scene), cfg.Width, cfg.Height, runs, workers, steps)
	results, err := bench.Run(ctx, cfg, seeds, steps, workers)
	for _, r := range results {
		fmt.Println(bench.Format(r, au))
	}
	if err != nil {
		log.Fatal(err)
	}
}
