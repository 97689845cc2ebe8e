// Package ebitenhost runs a colorific.Director in an Ebitengine window.
package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/colorific"
)

// RunConfig configures the window.
type RunConfig struct {
	Title string
	// Scale multiplies the logical 320x480 layout for the window size.
	Scale         float64
	ShowFPS       bool
	ScreenshotDir string
	// MaxFrameDelta, when positive, caps the seconds passed to the director
	// after a stalled frame. Zero passes the wall-clock delta through.
	MaxFrameDelta float64
	Log           *zap.Logger
}

// Game adapts a Director to ebiten.Game.
type Game struct {
	director *colorific.Director
	surface  *Surface
	shots    *screenshotter
	fps      *fpsOverlay
	log      *zap.Logger

	maxDelta float64
	last     time.Time
	dt       float64
	touches  []ebiten.TouchID
}

// NewGame wraps director. The director's screenshot hook is pointed at the
// game's capture queue.
func NewGame(director *colorific.Director, cfg RunConfig) *Game {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	g := &Game{
		director: director,
		surface:  NewSurface(),
		shots:    &screenshotter{dir: dir, log: log},
		log:      log,
		maxDelta: cfg.MaxFrameDelta,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	director.SetScreenshotFunc(g.shots.Queue)
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := time.Now()
	if !g.last.IsZero() {
		g.dt = frameDelta(now.Sub(g.last), g.maxDelta)
	}
	g.last = now

	g.handleKeys()
	g.handlePointer()

	g.director.Update(g.dt)
	if g.fps != nil {
		g.fps.update(g.dt)
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.director.Paused() {
			g.director.Resume()
		} else {
			g.director.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.Queue("manual")
	}
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	g.director.Hover(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.director.Click(float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		g.director.Click(float64(tx), float64(ty))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.director.Draw(g.surface, g.dt)
	g.shots.flush(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical layout is fixed; Ebitengine
// scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return colorific.ScreenWidth, colorific.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(director *colorific.Director, cfg RunConfig) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	title := cfg.Title
	if title == "" {
		title = "Colorific!"
	}
	ebiten.SetWindowSize(int(colorific.ScreenWidth*scale), int(colorific.ScreenHeight*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(director, cfg)
	g.log.Info("window open", zap.String("title", title), zap.Float64("scale", scale))
	return ebiten.RunGame(g)
}

// frameDelta converts d to seconds, clamped to limit when limit > 0.
func frameDelta(d time.Duration, limit float64) float64 {
	dt := max(d.Seconds(), 0)
	if limit > 0 {
		dt = min(dt, limit)
	}
	return dt
}
