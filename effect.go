package colorific

import (
	"math"
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ExplosionDuration is how long a cleared cell's burst stays on screen.
const ExplosionDuration = 0.5

// Explosion is the burst left behind by a cleared cell. It grows to twice the
// cell radius while fading out and has no effect on gameplay.
type Explosion struct {
	center Vec2
	radius float64
	color  Color
	tween  *gween.Tween
	t      float64
	dead   bool
}

// NewExplosion creates a burst centered at (cx, cy) with base radius r.
func NewExplosion(cx, cy, r float64, c Color) *Explosion {
	return &Explosion{
		center: Vec2{cx, cy},
		radius: r,
		color:  c,
		tween:  gween.New(0, 1, ExplosionDuration, ease.Linear),
	}
}

// Tick advances the burst by dt seconds.
func (e *Explosion) Tick(dt float64) {
	if e.dead {
		return
	}
	v, done := e.tween.Update(float32(dt))
	e.t = float64(v)
	e.dead = done
}

// Dead reports whether the burst has finished.
func (e *Explosion) Dead() bool { return e.dead }

// Progress returns the normalized elapsed time in [0, 1].
func (e *Explosion) Progress() float64 { return e.t }

// Render draws the expanding, fading circle.
func (e *Explosion) Render(s Surface, _ float64) {
	alpha := math.Max(0, 1-e.t)
	s.FillCircle(e.center.X, e.center.Y, e.radius*(1+e.t), e.color.WithAlpha(alpha))
}

// scorePopupDuration is how long the "+N" text floats above the board.
const scorePopupDuration = 0.8

// scorePopupLayer keeps the popup above explosions, which are unlayered.
const scorePopupLayer = 1

// ScorePopup is the floating "+N" shown where a turn was played.
type ScorePopup struct {
	text  string
	x, y  float64
	rise  *gween.Tween
	fade  *gween.Tween
	dy    float64
	alpha float64
	dead  bool
}

// NewScorePopup creates a popup for points anchored at (x, y).
func NewScorePopup(x, y float64, points int) *ScorePopup {
	return &ScorePopup{
		text:  "+" + strconv.Itoa(points),
		x:     x,
		y:     y,
		rise:  gween.New(0, -40, scorePopupDuration, ease.OutQuad),
		fade:  gween.New(1, 0, scorePopupDuration, ease.InQuad),
		alpha: 1,
	}
}

// Tick advances the popup.
func (p *ScorePopup) Tick(dt float64) {
	if p.dead {
		return
	}
	dy, _ := p.rise.Update(float32(dt))
	a, done := p.fade.Update(float32(dt))
	p.dy = float64(dy)
	p.alpha = float64(a)
	p.dead = done
}

// Dead reports whether the popup has faded out.
func (p *ScorePopup) Dead() bool { return p.dead }

// Layer implements Layered.
func (p *ScorePopup) Layer() int { return scorePopupLayer }

// Render draws the popup text.
func (p *ScorePopup) Render(s Surface, _ float64) {
	s.DrawText(p.text, p.x+2, p.y+p.dy+2, 20, TextAlignCenter, ColorBlack.WithAlpha(p.alpha))
	s.DrawText(p.text, p.x, p.y+p.dy, 20, TextAlignCenter, ColorWhite.WithAlpha(p.alpha))
}
