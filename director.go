package colorific

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ScreenshotFunc captures the next rendered frame under label. Hosts that
// can read back their framebuffer provide one.
type ScreenshotFunc func(label string)

// Director is the top-level object that owns the active screen and
// dispatches frame, click and hover calls to it. Screens hand control to
// each other by returning the next screen; nothing else switches screens.
type Director struct {
	current Screen
	log     *zap.Logger
	debug   bool

	injectQueue []Vec2
	runner      *ScriptRunner
	screenshot  ScreenshotFunc

	onTransition func(from, to Screen)
	frames       int
}

// NewDirector creates a director showing initial.
func NewDirector(initial Screen) *Director {
	if initial == nil {
		panic("colorific: NewDirector with nil screen")
	}
	return &Director{current: initial, log: zap.NewNop()}
}

// SetLogger sets the logger used for transitions and debug stats.
func (d *Director) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	d.log = log
}

// SetOnTransition registers fn to be called after every screen switch.
func (d *Director) SetOnTransition(fn func(from, to Screen)) {
	d.onTransition = fn
}

// SetScreenshotFunc sets the capture hook used by script screenshot steps.
func (d *Director) SetScreenshotFunc(fn ScreenshotFunc) {
	d.screenshot = fn
}

// Current returns the active screen.
func (d *Director) Current() Screen {
	return d.current
}

// Board returns the board of the active screen, or nil when it has none.
func (d *Director) Board() *Board {
	bs, ok := d.current.(BoardScreen)
	if !ok {
		return nil
	}
	return bs.Board()
}

// Frames returns how many times Update ran.
func (d *Director) Frames() int {
	return d.frames
}

// Update runs one frame of logic: the script runner, at most one injected
// click, then the active screen's Tick.
func (d *Director) Update(dt float64) {
	d.frames++
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	if d.runner != nil {
		d.runner.step(d)
	}
	d.processInjectedInput()
	d.switchTo(d.current.Tick(dt))

	if d.debug {
		d.debugFrame(time.Since(t0))
	}
}

// Draw renders the active screen. Call it after Update in the same frame.
func (d *Director) Draw(s Surface, dt float64) {
	d.current.Render(s, dt)
}

// Click forwards a click in logical coordinates to the active screen.
func (d *Director) Click(x, y float64) {
	d.switchTo(d.current.Click(x, y))
}

// Hover forwards the pointer position to screens that track it.
func (d *Director) Hover(x, y float64) {
	if h, ok := d.current.(Hoverer); ok {
		h.Hover(x, y)
	}
}

// Pause freezes the active screen. Pausing twice is a no-op.
func (d *Director) Pause() {
	if _, ok := d.current.(*PauseScreen); ok {
		return
	}
	d.switchTo(NewPauseScreen(d.current))
}

// Resume unfreezes a paused screen.
func (d *Director) Resume() {
	if p, ok := d.current.(*PauseScreen); ok {
		d.switchTo(p.Inner())
	}
}

// Paused reports whether the active screen is a PauseScreen.
func (d *Director) Paused() bool {
	_, ok := d.current.(*PauseScreen)
	return ok
}

func (d *Director) switchTo(next Screen) {
	if next == nil || next == d.current {
		return
	}
	prev := d.current
	d.current = next
	d.log.Info("screen transition",
		zap.String("from", screenName(prev)),
		zap.String("to", screenName(next)))
	if d.onTransition != nil {
		d.onTransition(prev, next)
	}
}

func screenName(s Screen) string {
	switch s.(type) {
	case *MenuScreen:
		return "menu"
	case *GameScreen:
		return "game"
	case *GameOverScreen:
		return "game_over"
	case *PauseScreen:
		return "pause"
	default:
		return fmt.Sprintf("%T", s)
	}
}
