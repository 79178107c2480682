package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/integrii/flaggy"
	"github.com/juju/loggo"

	"sandfall/internal/app"
	"sandfall/internal/sand"
	"sandfall/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 0, 0
	p := flaggy.NewParser("sand-term")
	p.Description = "Falling-sand cellular automaton in the terminal. Width and height default to the terminal size."
	cfg.Bind(p)
	logPath := ""
	p.String(&logPath, "", "log", "Write logs to this file at the --debug selected level")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}
	// The screen owns stderr while running, so without a log file only
	// warnings get through.
	if logPath != "" {
		restore, err := term.LogToFile(logPath, cfg.LoggingSpec())
		if err != nil {
			log.Fatal(err)
		}
		defer restore()
	} else if err := loggo.ConfigureLoggers("<root>=WARNING"); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	// Two grid rows per terminal row, one terminal row for the status line.
	tw, th := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = tw
	}
	if cfg.Height <= 0 {
		cfg.Height = 2 * (th - 1)
	}
	sc, err := cfg.SandConfig()
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	world := sand.NewWithConfig(sc)
	world.Reset(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	v := term.New(screen, world, cfg.TPS, sc.Seed)
	if err := v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		log.Fatal(err)
	}
}
