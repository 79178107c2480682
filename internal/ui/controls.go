package ui

import (
	"image"
	"math"
	"strconv"

	"sandfall/internal/core"
)

// control is one HUD row: the parameter it adjusts, its last known value and
// the hit boxes of its buttons in panel coordinates.
type control struct {
	core.ParameterControl

	value string
	num   float64
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func newControls(defs []core.ParameterControl) []control {
	out := make([]control, len(defs))
	for i, d := range defs {
		out[i] = control{ParameterControl: d, value: "--"}
	}
	return out
}

// refresh pulls the control's value out of snap.
func (c *control) refresh(snap core.ParameterSnapshot) {
	c.known = false
	c.value = "--"
	p, ok := snap.Lookup(c.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	c.num = v
	c.known = true
	c.value = c.format(v)
}

// next returns the value one step in direction, clamped to the control's
// bounds. ok is false when the step would not change anything.
func (c *control) next(direction int) (float64, bool) {
	if !c.known || direction == 0 {
		return c.num, false
	}
	step := c.Step
	if step <= 0 {
		step = 1
		if c.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	target := c.num + float64(direction)*step
	if c.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if c.Max > c.Min {
		target = math.Max(c.Min, math.Min(c.Max, target))
	}
	if math.Abs(target-c.num) < 1e-9 {
		return c.num, false
	}
	return target, true
}

// apply steps the control and pushes the new value through the matching
// setter.
func (c *control) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	target, ok := c.next(direction)
	if !ok {
		return false
	}
	switch c.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(c.Key, int(target)) {
			return false
		}
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(c.Key, target) {
			return false
		}
	default:
		return false
	}
	c.num = target
	c.value = c.format(target)
	return true
}

func (c *control) format(v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case c.Step > 0 && c.Step < 0.01:
		precision = 3
	case c.Step > 0 && c.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// layoutControls stacks rows below the header with the +/- buttons flush
// against the right edge of a panel of the given width.
func layoutControls(controls []control, width int) {
	for i := range controls {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
		controls[i].top = top
		controls[i].minus = minus
		controls[i].plus = plus
	}
}

// hit finds the control button under (x, y) and the direction it adjusts.
func hit(controls []control, x, y int) (int, int) {
	p := image.Pt(x, y)
	for i := range controls {
		if p.In(controls[i].minus) {
			return i, -1
		}
		if p.In(controls[i].plus) {
			return i, 1
		}
	}
	return -1, 0
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 14
	legendSpacing  = 16
)
