package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/colorific"
)

// DefaultFrameInterval is about 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// Options configures Run.
type Options struct {
	FrameInterval time.Duration
	Log           *zap.Logger
}

// host routes tcell events to a director.
type host struct {
	screen   tcell.Screen
	director *colorific.Director
	surface  *Surface
	log      *zap.Logger

	buttons tcell.ButtonMask
}

func newHost(screen tcell.Screen, director *colorific.Director, log *zap.Logger) *host {
	cols, rows := screen.Size()
	return &host{
		screen:   screen,
		director: director,
		surface:  NewSurface(cols, rows),
		log:      log,
	}
}

// Run drives director on an initialised screen until ctx is done or the
// player quits with Esc, Ctrl-C or q. P toggles pause. The caller owns the
// screen and must call Fini after Run returns.
func Run(ctx context.Context, screen tcell.Screen, director *colorific.Director, opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	h := newHost(screen, director, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	cols, rows := h.surface.Grid()
	log.Info("terminal open", zap.Int("cols", cols), zap.Int("rows", rows))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				log.Info("terminal quit")
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			h.frame(dt)
		}
	}
}

// frame runs one Update and Draw.
func (h *host) frame(dt float64) {
	h.director.Update(dt)
	h.director.Draw(h.surface, dt)
	h.surface.Flush(h.screen)
}

// handle applies one event. It returns false when the player quits.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			if h.director.Paused() {
				h.director.Resume()
			} else {
				h.director.Pause()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.surface.ToLogical(col, row)
		h.director.Hover(x, y)

		// only the press edge clicks
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && h.buttons&tcell.Button1 == 0 {
			h.director.Click(x, y)
		}
		h.buttons = ev.Buttons()

	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.surface.Resize(cols, rows)
		h.screen.Sync()
		h.log.Debug("terminal resize", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return true
}
