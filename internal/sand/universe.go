package sand

import (
	"image/color"

	"github.com/juju/errors"

	"sandfall/internal/core"
)

// ErrOutOfBounds is the cause of the panic raised when a mutation addresses
// a coordinate outside the universe. It signals a scheduler or rule bug.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Cell is one grid position: its substance, a cosmetic color and the
// per-tick processed marker.
type Cell struct {
	Substance Substance
	Color     color.RGBA
	Processed bool
}

var voidCell = Cell{Substance: Void(), Color: KindVoid.Color()}

// Universe owns the fixed-size rectangular array of cells. The y axis grows
// downward.
type Universe struct {
	grid *core.Grid[Cell]
}

// NewUniverse allocates a universe filled with Void.
func NewUniverse(w, h int) *Universe {
	u := &Universe{grid: core.NewGrid[Cell](w, h)}
	u.Clear()
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.grid.W, H: u.grid.H} }

// InBounds reports whether (x, y) addresses a cell.
func (u *Universe) InBounds(x, y int) bool { return u.grid.InBounds(x, y) }

// Cells exposes the row-major backing slice for renderers. Callers must not
// modify it.
func (u *Universe) Cells() []Cell { return u.grid.Cells() }

// Get returns a copy of the cell at (x, y). Coordinates outside the grid
// yield an OutOfBounds cell.
func (u *Universe) Get(x, y int) Cell {
	if !u.grid.InBounds(x, y) {
		return Cell{Substance: OutOfBounds()}
	}
	return *u.grid.At(x, y)
}

// At returns the cell at (x, y) for mutation. It panics if (x, y) is out of
// range.
func (u *Universe) At(x, y int) *Cell {
	u.mustContain(x, y)
	return u.grid.At(x, y)
}

// Swap exchanges the full contents of two cells. It panics if either
// coordinate is out of range.
func (u *Universe) Swap(x1, y1, x2, y2 int) {
	u.mustContain(x1, y1)
	u.mustContain(x2, y2)
	a, b := u.grid.At(x1, y1), u.grid.At(x2, y2)
	*a, *b = *b, *a
}

// Clear resets every cell to Void.
func (u *Universe) Clear() { u.grid.Fill(voidCell) }

func (u *Universe) clearProcessed() {
	cells := u.grid.Cells()
	for i := range cells {
		cells[i].Processed = false
	}
}

func (u *Universe) mustContain(x, y int) {
	if !u.grid.InBounds(x, y) {
		panic(errors.Annotatef(ErrOutOfBounds, "(%d, %d) outside %dx%d universe", x, y, u.grid.W, u.grid.H))
	}
}

// Census counts cells per kind.
type Census [kindCount]int

// Census tallies the current contents of the universe.
func (u *Universe) Census() Census {
	var c Census
	for _, cell := range u.grid.Cells() {
		if k := cell.Substance.Kind(); k < kindCount {
			c[k]++
		}
	}
	return c
}

// Count returns the number of cells holding kind.
func (c Census) Count(kind Kind) int {
	if kind >= kindCount {
		return 0
	}
	return c[kind]
}

// NonVoid returns the number of occupied cells.
func (c Census) NonVoid() int {
	total := 0
	for k, n := range c {
		if Kind(k) != KindVoid {
			total += n
		}
	}
	return total
}
