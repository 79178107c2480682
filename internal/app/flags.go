package app

import (
	"fmt"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/juju/errors"

	"sandfall/internal/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scene  string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	// HUD is the width in pixels of the parameter panel; 0 hides it.
	HUD   int
	Debug bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sand.DefaultConfig()
	return &Config{
		Scene:  d.Scene,
		Width:  d.Width,
		Height: d.Height,
		Scale:  d.Scale,
		TPS:    60,
		HUD:    220,
	}
}

// Bind attaches the configuration to the provided parser. Unexpected
// arguments are reported by Parse instead of exiting with the help text.
func (c *Config) Bind(p *flaggy.Parser) {
	p.ShowHelpOnUnexpected = false
	p.String(&c.Scene, "", "scene", fmt.Sprintf("Initial layout [%s]", strings.Join(sand.SceneNames(), "|")))
	p.Int(&c.Width, "x", "width", "Width of the universe in cells")
	p.Int(&c.Height, "y", "height", "Height of the universe in cells")
	p.Int(&c.Scale, "s", "scale", "Pixel scale multiplier")
	p.Int(&c.TPS, "t", "tps", "Ticks per second")
	p.Int64(&c.Seed, "", "seed", "Seed for the tie-break generator, 0 seeds from the clock")
	p.Int(&c.HUD, "", "hud", "Width of the parameter panel in pixels, 0 hides it")
	p.Bool(&c.Debug, "d", "debug", "Enable debug logging")
}

// SandConfig converts the flags into an engine configuration and validates it.
func (c *Config) SandConfig() (sand.Config, error) {
	cfg := sand.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Scale = c.Scale
	cfg.Seed = c.Seed
	cfg.Scene = c.Scene
	if c.TPS <= 0 {
		return cfg, errors.NotValidf("tps %d", c.TPS)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Annotate(err, "invalid flags")
	}
	return cfg, nil
}

// LoggingSpec returns the loggo configuration string for the selected
// verbosity.
func (c *Config) LoggingSpec() string {
	if c.Debug {
		return "<root>=DEBUG"
	}
	return "<root>=INFO"
}
