package ui

import (
	"fmt"

	"sandfall/internal/sand"
)

// Status is what the overlay reports about the running world.
type Status struct {
	Tick   uint64
	TPS    float64
	Paused bool
	Brush  string
	Census sand.Census
}

// Lines renders the status as overlay text, one entry per line. Kinds that
// are absent from the universe are left out of the census.
func (s Status) Lines() []string {
	head := fmt.Sprintf("tick %d  %.1f tps", s.Tick, s.TPS)
	if s.Paused {
		head += "  paused"
	}
	lines := []string{head}
	if s.Brush != "" {
		lines = append(lines, "brush "+s.Brush)
	}
	for _, k := range sand.Kinds() {
		if k == sand.KindVoid {
			continue
		}
		if n := s.Census.Count(k); n > 0 {
			lines = append(lines, fmt.Sprintf("%-6s %d", k, n))
		}
	}
	return lines
}
