package sand

import (
	"strconv"

	"github.com/juju/errors"
)

// Params holds the rule probabilities and thresholds.
type Params struct {
	// ErosionChance is the chance rock next to sampled water turns to sand.
	ErosionChance float64
	// IgniteChance is the chance fire sets a sampled grass neighbor alight.
	IgniteChance float64
	// SmokeSpawnChance is the chance fire puffs smoke into a sampled void.
	SmokeSpawnChance float64
	// BurnChance is the per-tick chance fire consumes one unit of fuel.
	BurnChance float64
	// GrassGrowChance is the per-tick chance idle grass advances its timer.
	GrassGrowChance float64

	ExposureThreshold int
	GrassGrowDelay    int
	GrassHeight       int
	IgniteFuel        int
	SmokeLifetimeMin  int
	SmokeLifetimeMax  int
}

// Config controls the universe dimensions and rule parameters.
type Config struct {
	Width  int
	Height int
	// Scale is the display pixels per cell. The engine only carries it.
	Scale int

	// Seed drives every tie-break; 0 seeds from the clock.
	Seed  int64
	Scene string

	Params Params
}

// DefaultParams returns the reference rule parameters.
func DefaultParams() Params {
	return Params{
		ErosionChance:     0.4,
		IgniteChance:      0.5,
		SmokeSpawnChance:  0.3,
		BurnChance:        0.5,
		GrassGrowChance:   0.2,
		ExposureThreshold: 200,
		GrassGrowDelay:    5,
		GrassHeight:       defaultGrassHeight,
		IgniteFuel:        defaultFireFuel,
		SmokeLifetimeMin:  100,
		SmokeLifetimeMax:  250,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Scale:  3,
		Scene:  "bands",
		Params: DefaultParams(),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.NotValidf("dimensions %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.NotValidf("scale %d", c.Scale)
	}
	if c.Scene != "" {
		if _, ok := Scenes()[c.Scene]; !ok {
			return errors.NotValidf("scene %q", c.Scene)
		}
	}
	return errors.Trace(c.Params.Validate())
}

// Validate checks that probabilities lie in [0, 1] and counters fit a uint8.
func (p Params) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"erosion chance", p.ErosionChance},
		{"ignite chance", p.IgniteChance},
		{"smoke spawn chance", p.SmokeSpawnChance},
		{"burn chance", p.BurnChance},
		{"grass grow chance", p.GrassGrowChance},
	}
	for _, pr := range probs {
		if pr.v < 0 || pr.v > 1 {
			return errors.NotValidf("%s %v", pr.name, pr.v)
		}
	}
	counters := []struct {
		name string
		v    int
	}{
		{"exposure threshold", p.ExposureThreshold},
		{"grass grow delay", p.GrassGrowDelay},
		{"grass height", p.GrassHeight},
		{"ignite fuel", p.IgniteFuel},
		{"smoke lifetime min", p.SmokeLifetimeMin},
		{"smoke lifetime max", p.SmokeLifetimeMax},
	}
	for _, c := range counters {
		if c.v < 0 || c.v > 255 {
			return errors.NotValidf("%s %d", c.name, c.v)
		}
	}
	// The exposure counter must be able to exceed the threshold.
	if p.ExposureThreshold >= 255 {
		return errors.NotValidf("exposure threshold %d", p.ExposureThreshold)
	}
	if p.SmokeLifetimeMax < p.SmokeLifetimeMin {
		return errors.NotValidf("smoke lifetime range [%d,%d)", p.SmokeLifetimeMin, p.SmokeLifetimeMax)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	counter := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
				*dst = parsed
			}
		}
	}
	chance := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}

	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("scale", &c.Scale)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if _, known := Scenes()[v]; known {
			c.Scene = v
		}
	}

	chance("erosion_chance", &c.Params.ErosionChance)
	chance("ignite_chance", &c.Params.IgniteChance)
	chance("smoke_spawn_chance", &c.Params.SmokeSpawnChance)
	chance("burn_chance", &c.Params.BurnChance)
	chance("grass_grow_chance", &c.Params.GrassGrowChance)
	counter("exposure_threshold", &c.Params.ExposureThreshold)
	if c.Params.ExposureThreshold >= 255 {
		c.Params.ExposureThreshold = DefaultParams().ExposureThreshold
	}
	counter("grass_grow_delay", &c.Params.GrassGrowDelay)
	counter("grass_height", &c.Params.GrassHeight)
	counter("ignite_fuel", &c.Params.IgniteFuel)
	counter("smoke_lifetime_min", &c.Params.SmokeLifetimeMin)
	counter("smoke_lifetime_max", &c.Params.SmokeLifetimeMax)
	if c.Params.SmokeLifetimeMax < c.Params.SmokeLifetimeMin {
		c.Params.SmokeLifetimeMax = c.Params.SmokeLifetimeMin
	}
	return c
}
