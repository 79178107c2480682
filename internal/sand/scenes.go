package sand

import (
	"sort"

	pcore "sandfall/pkg/core"
)

// Scene lays out an initial universe. The universe is already cleared to Void.
type Scene func(u *Universe, rng *pcore.RNG)

var scenes = map[string]Scene{}

// RegisterScene adds a scene under the provided name.
func RegisterScene(name string, s Scene) {
	if name == "" || s == nil {
		return
	}
	scenes[name] = s
}

// Scenes exposes the registry of available scenes.
func Scenes() map[string]Scene {
	return scenes
}

// SceneNames lists registered scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// place writes s at (x, y) if it is in range, with a shaded palette color.
func place(u *Universe, x, y int, s Substance, rng *pcore.RNG) {
	if !u.InBounds(x, y) {
		return
	}
	cell := u.At(x, y)
	cell.Substance = s
	cell.Color = Shade(s.Color(), rng)
}

func fillRect(u *Universe, x0, y0, x1, y1 int, s Substance, rng *pcore.RNG) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			place(u, x, y, s, rng)
		}
	}
}

// scaled maps a coordinate authored for a 256-cell axis onto an axis of n cells.
func scaled(v, n int) int { return v * n / 256 }

// bandsScene is a water band resting on top of a thicker sand band.
func bandsScene(u *Universe, rng *pcore.RNG) {
	w, h := u.Width(), u.Height()
	x0, x1 := scaled(10, w), scaled(250, w)
	fillRect(u, x0, scaled(5, h), x1, scaled(10, h), Water(), rng)
	fillRect(u, x0, scaled(11, h), x1, scaled(20, h), Sand(false), rng)
}

// pondScene is a rock basin half filled with water, with sand poured above.
func pondScene(u *Universe, rng *pcore.RNG) {
	w, h := u.Width(), u.Height()
	left, right := w/4, 3*w/4
	floor := h - 2
	fillRect(u, 0, floor, w, h, Rock(), rng)
	fillRect(u, left, h/2, left+2, floor, Rock(), rng)
	fillRect(u, right-2, h/2, right, floor, Rock(), rng)
	fillRect(u, left+2, 3*h/4, right-2, floor, Water(), rng)
	fillRect(u, left+w/8, h/8, left+w/8+w/16, h/4, Sand(false), rng)
}

// meadowScene is a dirt layer over bedrock with grass tufts, a buried pool
// and one spark of fire.
func meadowScene(u *Universe, rng *pcore.RNG) {
	w, h := u.Width(), u.Height()
	bedrock := h - 3
	topsoil := h - 10
	fillRect(u, 0, bedrock, w, h, Rock(), rng)
	fillRect(u, 0, topsoil, w, bedrock, Dirt(false, 0), rng)
	fillRect(u, w/2-w/16, topsoil+2, w/2+w/16, bedrock-1, Water(), rng)

	for x := 1; x < w; x += 1 + rng.Range(2, 8) {
		place(u, x, topsoil, Default(KindGrass), rng)
	}
	place(u, w/8, topsoil-1, Default(KindFire), rng)
}

func init() {
	RegisterScene("empty", func(*Universe, *pcore.RNG) {})
	RegisterScene("bands", bandsScene)
	RegisterScene("pond", pondScene)
	RegisterScene("meadow", meadowScene)
}
