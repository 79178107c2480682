package core

import "testing"

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid[int](4, 3)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			*g.At(x, y) = y*10 + x
		}
	}
	cells := g.Cells()
	if len(cells) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(cells))
	}
	if cells[g.Index(3, 2)] != 23 || cells[2*4+3] != 23 {
		t.Fatalf("row-major layout broken: %v", cells)
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[uint8](2, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {1, 1, true}, {-1, 0, false}, {0, -1, false}, {2, 0, false}, {0, 2, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[bool](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
