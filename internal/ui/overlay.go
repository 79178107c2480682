//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var overlayBG = color.RGBA{R: 0, G: 0, B: 0, A: 160}

// Overlay draws the tick counter, brush and census on top of the universe.
// Tab toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay { return &Overlay{visible: true} }

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status lines in the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if !o.visible {
		return
	}
	lines := s.Lines()
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	const lineH, pad = 14, 4
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*pad), float32(len(lines)*lineH+2*pad), overlayBG, false)
	for i, l := range lines {
		text.Draw(screen, l, face, pad, pad+(i+1)*lineH-3, color.White)
	}
}
