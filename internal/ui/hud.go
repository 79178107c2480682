//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"sandfall/internal/core"
	"sandfall/internal/sand"
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedFG    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// HUD renders the parameter panel and the brush legend to the right of the
// universe view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	height   int
	title    string
	controls []control
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	offsetX  int
	selected sand.Kind
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: "Controls"}
	if name := sim.Name(); name != "" {
		h.title = fmt.Sprintf("%s controls", strings.ToUpper(name[:1])+name[1:])
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(p.ParameterControls())
		layoutControls(h.controls, width)
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width reports the panel width; a nil HUD takes no room.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes control values and handles clicks on the +/- buttons.
func (h *HUD) Update(offsetX int, selected sand.Kind) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	h.selected = selected
	if p, ok := h.sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		for i := range h.controls {
			h.controls[i].refresh(snap)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if i, dir := hit(h.controls, mx-h.offsetX, my); i >= 0 {
		if h.controls[i].apply(dir, h.ints, h.floats) {
			logger.Debugf("%s set to %s", h.controls[i].Key, h.controls[i].value)
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleFG)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, mutedFG)
	}
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawLegend(controlsTop + len(h.controls)*lineHeight + panelPadding)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *control) {
	face := basicfont.Face7x13
	y := c.top + labelBaseline
	text.Draw(h.panel, c.Label, face, panelPadding, y, labelFG)

	fg := labelFG
	if !c.known {
		fg = mutedFG
	}
	w := text.BoundString(face, c.value).Dx()
	text.Draw(h.panel, c.value, face, c.minus.Min.X-buttonGap-w, y, fg)

	_, canDown := c.next(-1)
	_, canUp := c.next(1)
	h.drawButton(c.minus, "-", canDown)
	h.drawButton(c.plus, "+", canUp)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, buttonText
	if !enabled {
		bg, fg = buttonOff, mutedFG
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// drawLegend lists the digit bindings with a swatch per kind, marking the
// kind currently on the brush.
func (h *HUD) drawLegend(top int) {
	face := basicfont.Face7x13
	for i, k := range sand.Kinds() {
		y := top + i*legendSpacing
		if y+legendSpacing > h.height {
			return
		}
		vector.DrawFilledRect(h.panel, float32(panelPadding), float32(y), 10, 10, k.Color(), false)
		label := fmt.Sprintf("%d %s", i+1, k)
		fg := mutedFG
		if k == h.selected {
			label += " <"
			fg = labelFG
		}
		text.Draw(h.panel, label, face, panelPadding+16, y+10, fg)
	}
}
