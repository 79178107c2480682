package sand

import (
	"testing"

	pcore "sandfall/pkg/core"
)

func TestShadeStaysNearBase(t *testing.T) {
	rng := pcore.NewRNG(21)
	base := KindSand.Color()
	varied := false
	for i := 0; i < 200; i++ {
		c := Shade(base, rng)
		if c != base {
			varied = true
		}
		if diff(c.R, base.R) > 40 || diff(c.G, base.G) > 40 || diff(c.B, base.B) > 40 {
			t.Fatalf("shade %v drifted too far from %v", c, base)
		}
		if c.A != base.A {
			t.Fatalf("alpha changed: %d", c.A)
		}
	}
	if !varied {
		t.Fatal("shade never varied the base color")
	}
	if got := Shade(KindVoid.Color(), rng); got != KindVoid.Color() {
		t.Fatalf("void shaded to %v", got)
	}
	if got := Shade(base, nil); got != base {
		t.Fatalf("nil rng should return base, got %v", got)
	}
}

func TestDisplayColorFadesSmoke(t *testing.T) {
	base := KindSmoke.Color()
	young := DisplayColor(Cell{Substance: Smoke(240), Color: base})
	old := DisplayColor(Cell{Substance: Smoke(5), Color: base})
	if brightness(old) >= brightness(young) {
		t.Fatalf("old smoke %v should be darker than young smoke %v", old, young)
	}
}

func TestDisplayColorPassThrough(t *testing.T) {
	c := Cell{Substance: Rock(), Color: KindRock.Color()}
	if got := DisplayColor(c); got != c.Color {
		t.Fatalf("rock display = %v, want %v", got, c.Color)
	}
	if got := DisplayColor(Cell{Substance: OutOfBounds()}); got != KindOutOfBounds.Color() {
		t.Fatalf("sentinel display = %v", got)
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func brightness(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}
