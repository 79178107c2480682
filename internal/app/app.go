//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/loggo"

	"sandfall/internal/render"
	"sandfall/internal/sand"
	"sandfall/internal/ui"
)

var logger = loggo.GetLogger("sandfall.app")

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a sand world to the ebiten.Game interface. Painting happens
// in Update before the tick, so the frame loop is the only writer.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   Brush

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, cfg.HUD),
		overlay: ui.NewOverlay(),
		brush:   NewBrush(),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset rebuilds the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	logger.Infof("reset with seed %d", seed)
}

// Update handles per-frame input and advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Universe().Clear()
	}
	for d, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.brush.Select(d)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.Resize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.Resize(1)
	}
	g.paint()

	g.overlay.Update()
	g.hud.Update(g.gridWidth(), g.brush.Kind)

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// paint applies the brush under the cursor: left button paints, right
// button erases.
func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, g.scale, g.world.Size())
	if !ok {
		return
	}
	if right {
		g.brush.Erase(g.world, x, y)
		return
	}
	g.brush.Paint(g.world, x, y)
}

// Draw renders the current universe.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Universe(), g.scale)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
	g.overlay.Draw(screen, ui.Status{
		Tick:   g.world.Tick(),
		TPS:    ebiten.ActualTPS(),
		Paused: g.paused,
		Brush:  g.brush.String(),
		Census: g.world.Census(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return g.gridWidth() + g.hud.Width(), s.H * g.scale
}

func (g *Game) gridWidth() int { return g.world.Size().W * g.scale }
