// Package term renders a sand world in a terminal. Each terminal row shows
// two grid rows using the upper half block: the foreground paints the upper
// cell and the background paints the lower one.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sand"
)

var logger = loggo.GetLogger("sandfall.term")

const upperHalf = '▀'

// frameInterval is how often Run redraws, independent of the tick rate.
const frameInterval = 16 * time.Millisecond

// Viewer drives a world from terminal input and draws it to a tcell screen.
type Viewer struct {
	screen tcell.Screen
	world  *sand.World
	brush  app.Brush
	pacer  *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a viewer. The screen must already be initialised.
func New(screen tcell.Screen, world *sand.World, tps int, seed int64) *Viewer {
	return &Viewer{
		screen: screen,
		world:  world,
		brush:  app.NewBrush(),
		pacer:  core.NewFixedStep(tps),
		seed:   seed,
	}
}

// Brush returns the current painting tool.
func (v *Viewer) Brush() app.Brush { return v.brush }

// Paused reports whether ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run processes input and advances the world until the user quits or ctx is
// cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	v.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			v.advance(v.pacer.Due(now))
			v.Draw()
			v.screen.Show()
		}
	}
}

// advance runs up to n owed ticks, or one when single-stepping while paused.
func (v *Viewer) advance(n int) {
	if v.paused {
		if v.tickOnce {
			v.world.Step()
			v.tickOnce = false
		}
		return
	}
	for i := 0; i < n; i++ {
		v.world.Step()
	}
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	r := ev.Rune()
	switch {
	case r == 'q':
		return false
	case r == ' ':
		v.paused = !v.paused
	case r == 'n':
		v.tickOnce = true
	case r == 'r':
		v.reset(v.seed)
	case r == 's':
		v.reset(time.Now().UnixNano())
	case r == 'c':
		v.world.Universe().Clear()
	case r == '[':
		v.brush.Resize(-1)
	case r == ']':
		v.brush.Resize(1)
	case r >= '0' && r <= '9':
		v.brush.Select(int(r - '0'))
	}
	return true
}

func (v *Viewer) reset(seed int64) {
	v.seed = seed
	v.world.Reset(seed)
	logger.Infof("reset with seed %d", seed)
}

// handleMouse paints with the primary button and erases with the secondary
// one. A terminal cell covers two grid rows; the brush is centred on the
// upper one.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&(tcell.ButtonPrimary|tcell.ButtonSecondary) == 0 {
		return
	}
	mx, my := ev.Position()
	x, y := mx, my*2
	if !v.world.Universe().InBounds(x, y) {
		return
	}
	if btn&tcell.ButtonSecondary != 0 {
		v.brush.Erase(v.world, x, y)
		return
	}
	v.brush.Paint(v.world, x, y)
}

// Draw renders the universe and a status line into the screen buffer. It
// does not call Show.
func (v *Viewer) Draw() {
	u := v.world.Universe()
	sw, sh := v.screen.Size()
	rows := (u.Height() + 1) / 2
	for ty := 0; ty < rows && ty < sh; ty++ {
		for x := 0; x < u.Width() && x < sw; x++ {
			v.screen.SetContent(x, ty, upperHalf, nil, CellStyle(u, x, ty*2))
		}
	}
	if rows < sh {
		v.drawStatus(rows, sw)
	}
}

func (v *Viewer) drawStatus(row, width int) {
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" tick %d  %s  brush %s  [0-9] kind  [ ] size  space pause  q quit", v.world.Tick(), state, v.brush)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, row, r, nil, style)
	}
}

// CellStyle returns the half-block style for the terminal cell whose upper
// grid cell is (x, y). Below the last grid row the background is black.
func CellStyle(u *sand.Universe, x, y int) tcell.Style {
	fg := toTcell(sand.DisplayColor(u.Get(x, y)))
	bg := tcell.ColorBlack
	if y+1 < u.Height() {
		bg = toTcell(sand.DisplayColor(u.Get(x, y+1)))
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
