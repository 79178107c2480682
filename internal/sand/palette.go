package sand

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	pcore "sandfall/pkg/core"
)

// shadeSpread is the maximum lightness jitter applied to freshly placed cells.
const shadeSpread = 0.08

var (
	black      = colorful.Color{}
	fireYellow = colorful.Color{R: 1, G: 0.85, B: 0.3}
)

// Shade returns base with a small random lightness jitter so that large
// uniform areas read as grains. Void stays pure black.
func Shade(base color.RGBA, rng *pcore.RNG) color.RGBA {
	if rng == nil || base == KindVoid.Color() {
		return base
	}
	h, s, l := toColorful(base).Hsl()
	l += (rng.Float64() - 0.5) * shadeSpread
	return fromColorful(colorful.Hsl(h, s, clamp01(l)), base.A)
}

// DisplayColor resolves the color a renderer should draw for c. Smoke fades
// toward black as it ages and fire brightens with its fuel; everything else
// uses the cell's cosmetic color.
func DisplayColor(c Cell) color.RGBA {
	switch c.Substance.Kind() {
	case KindSmoke:
		fade := 1 - float64(c.Substance.Lifetime())/float64(smokeFadeSpan)
		return fromColorful(toColorful(c.Color).BlendRgb(black, 0.7*clamp01(fade)), 255)
	case KindFire:
		heat := float64(c.Substance.Fuel()) / float64(defaultFireFuel)
		return fromColorful(toColorful(c.Color).BlendRgb(fireYellow, 0.6*clamp01(heat)), 255)
	case KindOutOfBounds:
		return KindOutOfBounds.Color()
	default:
		return c.Color
	}
}

// smokeFadeSpan is the lifetime at which smoke is drawn at full color.
const smokeFadeSpan = 250

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
