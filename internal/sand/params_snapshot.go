package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the world settings and rule tunables.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.u.Width()),
				intParam("h", "Height", w.u.Height()),
				intParam("scale", "Scale", w.cfg.Scale),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Chances",
			Params: []core.Parameter{
				floatParam("erosion_chance", "Erosion", p.ErosionChance),
				floatParam("ignite_chance", "Ignite", p.IgniteChance),
				floatParam("smoke_spawn_chance", "Smoke spawn", p.SmokeSpawnChance),
				floatParam("burn_chance", "Burn", p.BurnChance),
				floatParam("grass_grow_chance", "Grass grow", p.GrassGrowChance),
			},
		},
		{
			Name: "Counters",
			Params: []core.Parameter{
				intParam("exposure_threshold", "Exposure threshold", p.ExposureThreshold),
				intParam("grass_grow_delay", "Grass grow delay", p.GrassGrowDelay),
				intParam("grass_height", "Grass height", p.GrassHeight),
				intParam("ignite_fuel", "Ignite fuel", p.IgniteFuel),
				intParam("smoke_lifetime_min", "Smoke lifetime min", p.SmokeLifetimeMin),
				intParam("smoke_lifetime_max", "Smoke lifetime max", p.SmokeLifetimeMax),
			},
		},
	}}
}

// ParameterControls lists the tunables the HUD may adjust at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	chance := func(key, label string) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1}
	}
	return []core.ParameterControl{
		chance("erosion_chance", "Erosion"),
		chance("ignite_chance", "Ignite"),
		chance("smoke_spawn_chance", "Smoke spawn"),
		chance("burn_chance", "Burn"),
		chance("grass_grow_chance", "Grass grow"),
		{Key: "exposure_threshold", Label: "Exposure", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 254},
		{Key: "grass_height", Label: "Grass height", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32},
		{Key: "ignite_fuel", Label: "Ignite fuel", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255},
	}
}

// SetFloatParameter updates a chance, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	dst := w.floatParam(key)
	if dst == nil {
		return false
	}
	*dst = clamp01(value)
	return true
}

// SetIntParameter updates a counter parameter, clamped to what the counters
// can hold.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	limit := 255
	var dst *int
	switch key {
	case "exposure_threshold":
		dst, limit = &p.ExposureThreshold, 254
	case "grass_grow_delay":
		dst = &p.GrassGrowDelay
	case "grass_height":
		dst = &p.GrassHeight
	case "ignite_fuel":
		dst = &p.IgniteFuel
	case "smoke_lifetime_min":
		dst = &p.SmokeLifetimeMin
	case "smoke_lifetime_max":
		dst = &p.SmokeLifetimeMax
	default:
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > limit {
		value = limit
	}
	*dst = value
	if p.SmokeLifetimeMax < p.SmokeLifetimeMin {
		p.SmokeLifetimeMax = p.SmokeLifetimeMin
	}
	return true
}

func (w *World) floatParam(key string) *float64 {
	p := &w.cfg.Params
	switch key {
	case "erosion_chance":
		return &p.ErosionChance
	case "ignite_chance":
		return &p.IgniteChance
	case "smoke_spawn_chance":
		return &p.SmokeSpawnChance
	case "burn_chance":
		return &p.BurnChance
	case "grass_grow_chance":
		return &p.GrassGrowChance
	}
	return nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
