package sand

import pcore "sandfall/pkg/core"

// Local is the cell-local view a rule receives: every operation is relative
// to the anchor cell. Set and Swap flag the cells they touch as processed so
// the scheduler will not visit them again this tick.
type Local struct {
	u      *Universe
	x, y   int
	rng    *pcore.RNG
	params *Params
}

// Get reads the cell at the given offset; past the edge it is OutOfBounds.
func (l *Local) Get(dx, dy int) Cell { return l.u.Get(l.x+dx, l.y+dy) }

// Self returns the anchor cell's substance.
func (l *Local) Self() Substance { return l.Get(0, 0).Substance }

// Set writes s at the given offset and marks that cell processed. When the
// kind changes the cosmetic color is re-derived from the new kind.
func (l *Local) Set(dx, dy int, s Substance) {
	cell := l.u.At(l.x+dx, l.y+dy)
	if cell.Substance.Kind() != s.Kind() {
		cell.Color = Shade(s.Color(), l.rng)
	}
	cell.Substance = s
	cell.Processed = true
}

// Swap exchanges the anchor cell with the cell at the given offset and marks
// both processed.
func (l *Local) Swap(dx, dy int) {
	tx, ty := l.x+dx, l.y+dy
	l.u.Swap(l.x, l.y, tx, ty)
	l.u.At(l.x, l.y).Processed = true
	l.u.At(tx, ty).Processed = true
}

// Offset returns a uniform horizontal tie-break in {-1, 0, 1}.
func (l *Local) Offset() int { return l.rng.Offset() }

// Neighbor returns a uniformly chosen Moore neighbor offset.
func (l *Local) Neighbor() (int, int) { return l.rng.Neighbor() }

// Chance reports true with probability p.
func (l *Local) Chance(p float64) bool { return l.rng.Chance(p) }

// Params returns the active rule parameters.
func (l *Local) Params() *Params { return l.params }

func (l *Local) smokeLifetime() uint8 {
	return uint8(l.rng.Range(l.params.SmokeLifetimeMin, l.params.SmokeLifetimeMax))
}
