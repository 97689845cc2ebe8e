package colorific

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Screen is one state of the game shell (menu, board, game over). Tick and
// Click return the screen to switch to, or nil to stay.
type Screen interface {
	Tick(dt float64) Screen
	Render(s Surface, dt float64)
	Click(x, y float64) Screen
}

// Hoverer is implemented by screens that react to pointer movement.
type Hoverer interface {
	Hover(x, y float64)
}

// BoardScreen is implemented by screens that show a board.
type BoardScreen interface {
	Board() *Board
}

// NoClick can be embedded by screens that ignore clicks.
type NoClick struct{}

// Click implements Screen and never transitions.
func (NoClick) Click(x, y float64) Screen { return nil }

// Session carries what outlives a single board: the high score, the board
// configuration and the hooks hosts use for audio and event bridging.
type Session struct {
	Config    BoardConfig
	HighScore int
	// Games counts boards started in this session.
	Games int

	log  *zap.Logger
	sink EventSink

	// OnTurn is called after every resolved click of any board.
	OnTurn func(TurnResult)
	// OnFinished is called when a board ends, after HighScore was updated.
	OnFinished func(finalScore, highScore int)
}

// NewSession creates a session starting from highScore.
func NewSession(cfg BoardConfig, highScore int) *Session {
	return &Session{Config: cfg, HighScore: highScore, log: zap.NewNop()}
}

// SetLogger sets the logger handed to every board.
func (s *Session) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// SetEventSink sets the event bridge handed to every board.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// NewBoard creates a board wired to the session. Successive boards get
// distinct seeds when the configuration fixes one.
func (s *Session) NewBoard() *Board {
	cfg := s.Config
	if cfg.Seed != 0 {
		cfg.Seed += uint64(s.Games)
	}
	s.Games++

	b := NewBoard(cfg, s.HighScore)
	b.SetLogger(s.log)
	b.SetEventSink(s.sink)
	b.OnTurn = func(r TurnResult) {
		if s.OnTurn != nil {
			s.OnTurn(r)
		}
	}
	b.OnFinished = func(final, high int) {
		s.HighScore = max(s.HighScore, high)
		if s.OnFinished != nil {
			s.OnFinished(final, s.HighScore)
		}
	}
	s.log.Info("new game",
		zap.Int("game", s.Games),
		zap.Int("turns", cfg.Turns),
		zap.Int("high_score", s.HighScore))
	return b
}

// --- Menu ---

const titleBobHeight = 6

// MenuScreen shows the title, the high score and a blinking prompt.
type MenuScreen struct {
	session *Session
	time    float64
	bob     *gween.Tween
	bobUp   bool
	bobY    float64
}

// NewMenuScreen creates the title screen.
func NewMenuScreen(session *Session) *MenuScreen {
	return &MenuScreen{
		session: session,
		bob:     gween.New(0, titleBobHeight, 1, ease.InOutSine),
	}
}

// Tick implements Screen.
func (m *MenuScreen) Tick(dt float64) Screen {
	m.time += dt
	v, done := m.bob.Update(float32(dt))
	m.bobY = float64(v)
	if done {
		m.bobUp = !m.bobUp
		from, to := float32(0), float32(titleBobHeight)
		if m.bobUp {
			from, to = to, from
		}
		m.bob = gween.New(from, to, 1, ease.InOutSine)
	}
	return nil
}

// PromptVisible reports whether the blinking prompt is shown at this moment.
func (m *MenuScreen) PromptVisible() bool {
	return int(math.Floor(m.time*2))%2 == 0
}

// Render implements Screen.
func (m *MenuScreen) Render(s Surface, _ float64) {
	w, _ := s.Size()
	s.Fill(ColorBlack)
	s.DrawText("Colorific!", w/2, 100+m.bobY, 40, TextAlignCenter, ColorOrange)
	s.DrawText("High: "+FormatScore(m.session.HighScore), w/2, 250, 40, TextAlignCenter, ColorWhite)
	if m.PromptVisible() {
		s.DrawText("Tap to Start", w/2, 380, 40, TextAlignCenter, ColorWhite)
	}
}

// Click implements Screen and starts a new game.
func (m *MenuScreen) Click(x, y float64) Screen {
	return NewGameScreen(m.session)
}

// --- Game ---

// GameScreen hosts a board until it finishes.
type GameScreen struct {
	session *Session
	board   *Board
}

// NewGameScreen starts a new board in session.
func NewGameScreen(session *Session) *GameScreen {
	return &GameScreen{session: session, board: session.NewBoard()}
}

// Board implements BoardScreen.
func (g *GameScreen) Board() *Board { return g.board }

// Tick implements Screen.
func (g *GameScreen) Tick(dt float64) Screen {
	g.board.Tick(dt)
	if g.board.Phase() == PhaseFinished {
		return NewGameOverScreen(g.session, g.board)
	}
	return nil
}

// Render implements Screen.
func (g *GameScreen) Render(s Surface, dt float64) {
	g.board.Render(s, dt)
}

// Click implements Screen.
func (g *GameScreen) Click(x, y float64) Screen {
	g.board.Click(x, y)
	return nil
}

// Hover implements Hoverer.
func (g *GameScreen) Hover(x, y float64) {
	g.board.Hover(x, y)
}

// --- Game over ---

// GameOverDelay is how long the game-over overlay ignores clicks.
const GameOverDelay = 2.0

// GameOverScreen keeps the finished board animating underneath a
// "Game Over" banner.
type GameOverScreen struct {
	session *Session
	board   *Board
	time    float64
}

// NewGameOverScreen wraps a finished board.
func NewGameOverScreen(session *Session, board *Board) *GameOverScreen {
	return &GameOverScreen{session: session, board: board}
}

// Board implements BoardScreen.
func (g *GameOverScreen) Board() *Board { return g.board }

// Tick implements Screen.
func (g *GameOverScreen) Tick(dt float64) Screen {
	g.time += dt
	g.board.Tick(dt)
	return nil
}

// Render implements Screen.
func (g *GameOverScreen) Render(s Surface, dt float64) {
	g.board.Render(s, dt)
	w, h := s.Size()
	s.DrawText("Game Over", w/2+2, h/2+2, 54, TextAlignCenter, ColorBlack)
	s.DrawText("Game Over", w/2, h/2, 54, TextAlignCenter, ColorRed)
}

// Click implements Screen. Clicks return to the menu once GameOverDelay has
// passed.
func (g *GameOverScreen) Click(x, y float64) Screen {
	if g.time > GameOverDelay {
		return NewMenuScreen(g.session)
	}
	return nil
}

// --- Pause ---

// PauseScreen freezes another screen and draws it dimmed. It ignores clicks;
// hosts resume it through Director.Resume.
type PauseScreen struct {
	NoClick
	inner Screen
}

// NewPauseScreen wraps inner.
func NewPauseScreen(inner Screen) *PauseScreen {
	return &PauseScreen{inner: inner}
}

// Inner returns the frozen screen.
func (p *PauseScreen) Inner() Screen { return p.inner }

// Tick implements Screen. The wrapped screen does not advance.
func (p *PauseScreen) Tick(dt float64) Screen { return nil }

// Render implements Screen.
func (p *PauseScreen) Render(s Surface, dt float64) {
	p.inner.Render(s, 0)
	w, h := s.Size()
	s.FillRect(0, 0, w, h, ColorBlack.WithAlpha(0.6))
	s.DrawText("Paused", w/2, h/2, 40, TextAlignCenter, ColorWhite)
}
