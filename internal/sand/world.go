package sand

import (
	"github.com/juju/loggo"

	"sandfall/internal/core"
	pcore "sandfall/pkg/core"
)

var logger = loggo.GetLogger("sandfall.sand")

// World drives the automaton: it owns the universe, the tie-break generator
// and the rule parameters, and advances everything one tick per Step.
type World struct {
	cfg  Config
	u    *Universe
	rng  *pcore.RNG
	tick uint64
}

// New returns a world with the provided dimensions using defaults and an
// empty universe.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Scene = ""
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// universe starts as Void; call Reset to lay out the configured scene.
func NewWithConfig(cfg Config) *World {
	return &World{
		cfg: cfg,
		u:   NewUniverse(cfg.Width, cfg.Height),
		rng: pcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandfall" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.u.Size() }

// Universe exposes the grid for renderers and tests.
func (w *World) Universe() *Universe { return w.u }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of completed steps since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Census tallies the universe contents.
func (w *World) Census() Census { return w.u.Census() }

// Reset clears the universe and lays out the configured scene. A non-zero
// seed reseeds the generator; zero keeps the current stream.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.rng = pcore.NewRNG(seed)
	}
	w.u.Clear()
	w.tick = 0
	if scene, ok := Scenes()[w.cfg.Scene]; ok {
		scene(w.u, w.rng)
	}
	logger.Debugf("reset %dx%d universe with scene %q", w.u.Width(), w.u.Height(), w.cfg.Scene)
}

// Step advances the automaton by one tick. Every processed marker is
// cleared first, then cells are visited column by column, left to right and
// top to bottom within a column. A cell already marked processed, because an
// earlier rule moved or wrote into it, is skipped.
func (w *World) Step() {
	w.u.clearProcessed()
	width, height := w.u.Width(), w.u.Height()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cell := w.u.At(x, y)
			if cell.Processed {
				continue
			}
			l := Local{u: w.u, x: x, y: y, rng: w.rng, params: &w.cfg.Params}
			dispatch(&l, cell.Substance)
		}
	}
	w.tick++
}

// Paint overwrites the cell at (x, y) with a default instance of kind,
// bypassing the rules. Coordinates outside the grid are ignored and reported
// as false.
func (w *World) Paint(x, y int, kind Kind) bool {
	if !w.u.InBounds(x, y) {
		return false
	}
	s := Default(kind)
	cell := w.u.At(x, y)
	cell.Substance = s
	cell.Color = Shade(s.Color(), w.rng)
	return true
}

// PaintCircle paints every in-range cell within radius of (cx, cy) and
// returns how many cells were written.
func (w *World) PaintCircle(cx, cy, radius int, kind Kind) int {
	if radius < 0 {
		return 0
	}
	r2 := radius * radius
	n := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if w.Paint(cx+dx, cy+dy, kind) {
				n++
			}
		}
	}
	return n
}
