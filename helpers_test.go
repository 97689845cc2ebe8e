package colorific

import "testing"

// drawCall is one recorded Surface operation.
type drawCall struct {
	kind   string // fill, rect, circle, polygon, text
	x, y   float64
	w, h   float64
	text   string
	points int
	color  Color
}

// recordingSurface is a Surface that records every call.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Size() (w, h float64) { return ScreenWidth, ScreenHeight }

func (s *recordingSurface) Fill(c Color) {
	s.calls = append(s.calls, drawCall{kind: "fill", color: c})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c Color) {
	s.calls = append(s.calls, drawCall{kind: "circle", x: cx, y: cy, w: r, color: c})
}

func (s *recordingSurface) FillPolygon(points []Vec2, c Color) {
	s.calls = append(s.calls, drawCall{kind: "polygon", points: len(points), color: c})
}

func (s *recordingSurface) DrawText(str string, x, y, size float64, align TextAlign, c Color) {
	s.calls = append(s.calls, drawCall{kind: "text", x: x, y: y, h: size, text: str, color: c})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) hasText(str string) bool {
	for _, c := range s.calls {
		if c.kind == "text" && c.text == str {
			return true
		}
	}
	return false
}

// testConfig returns the default layout resized to n x n with a fixed seed.
func testConfig(n int) BoardConfig {
	cfg := DefaultBoardConfig()
	cfg.Size = n
	cfg.Seed = 1
	return cfg
}

// settledBoard builds a board from colors and runs the first tick, so it is
// awaiting input with bonus colors drawn.
func settledBoard(t *testing.T, colors [][]ColorIndex) *Board {
	t.Helper()
	b, err := NewBoardFromColors(testConfig(len(colors)), colors, 0)
	if err != nil {
		t.Fatalf("NewBoardFromColors: %v", err)
	}
	b.Tick(1.0 / 60)
	if b.Phase() != PhaseAwaitingInput {
		t.Fatalf("phase = %v, want awaiting_input", b.Phase())
	}
	return b
}

// cellCentre returns the screen point at the middle of slot (row, col).
func cellCentre(cfg BoardConfig, row, col int) (x, y float64) {
	return cfg.OriginX + (float64(col)+0.5)*cfg.CellWidth,
		cfg.OriginY + (float64(row)+0.5)*cfg.CellHeight
}

// settle ticks b until it stops settling or limit ticks elapse.
func settle(t *testing.T, b *Board) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if b.Phase() != PhaseSettling {
			return
		}
		b.Tick(1.0 / 60)
	}
	t.Fatalf("board still settling after 5000 ticks (%d falling)", b.Falling())
}
