package app

import (
	"fmt"

	"sandfall/internal/core"
	"sandfall/internal/sand"
)

const maxBrushRadius = 16

// Brush is the painting tool shared by the GUI and terminal front ends.
type Brush struct {
	Kind   sand.Kind
	Radius int
}

// NewBrush returns a small sand brush.
func NewBrush() Brush {
	return Brush{Kind: sand.KindSand, Radius: 2}
}

// KindForDigit maps the number keys to paintable kinds in palette order.
// 0 is the eraser.
func KindForDigit(d int) (sand.Kind, bool) {
	if d == 0 {
		return sand.KindVoid, true
	}
	kinds := sand.Kinds()
	if d < 1 || d > len(kinds) {
		return 0, false
	}
	return kinds[d-1], true
}

// Select switches the brush to the kind bound to digit d.
func (b *Brush) Select(d int) bool {
	k, ok := KindForDigit(d)
	if ok {
		b.Kind = k
	}
	return ok
}

// Resize grows or shrinks the radius, clamped to [0, maxBrushRadius].
func (b *Brush) Resize(delta int) {
	b.Radius += delta
	if b.Radius < 0 {
		b.Radius = 0
	}
	if b.Radius > maxBrushRadius {
		b.Radius = maxBrushRadius
	}
}

// Paint stamps the brush at (x, y) and returns the number of cells written.
func (b Brush) Paint(w *sand.World, x, y int) int {
	return w.PaintCircle(x, y, b.Radius, b.Kind)
}

// Erase clears the brush footprint at (x, y).
func (b Brush) Erase(w *sand.World, x, y int) int {
	return w.PaintCircle(x, y, b.Radius, sand.KindVoid)
}

func (b Brush) String() string {
	return fmt.Sprintf("%s r=%d", b.Kind, b.Radius)
}

// CellAt maps a screen position to the grid cell under it. ok is false when
// the position falls outside the grid.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
