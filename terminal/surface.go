// Package terminal runs a colorific.Director inside a terminal with tcell.
//
// The logical 320x480 layout is sampled onto the terminal grid: every
// character cell takes the color found at its centre, and text is written
// as runes on top.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/colorific"
)

type glyph struct {
	r  rune
	fg colorific.Color
}

// Surface rasterises draw calls onto a grid of terminal cells.
type Surface struct {
	cols, rows int
	// logical pixels per cell
	sx, sy float64

	bg   []colorific.Color
	text []glyph
}

// NewSurface creates a surface for a cols x rows terminal.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize adapts the grid to a new terminal size.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.sx = colorific.ScreenWidth / float64(s.cols)
	s.sy = colorific.ScreenHeight / float64(s.rows)
	s.bg = make([]colorific.Color, s.cols*s.rows)
	s.text = make([]glyph, s.cols*s.rows)
}

// Grid returns the terminal size the surface maps to.
func (s *Surface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// ToLogical maps a terminal cell to the logical point at its centre.
func (s *Surface) ToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.sx, (float64(row) + 0.5) * s.sy
}

// Size implements colorific.Surface.
func (s *Surface) Size() (w, h float64) {
	return colorific.ScreenWidth, colorific.ScreenHeight
}

// Fill implements colorific.Surface.
func (s *Surface) Fill(c colorific.Color) {
	for i := range s.bg {
		s.bg[i] = blend(s.bg[i], c)
		s.text[i] = glyph{}
	}
}

// FillRect implements colorific.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c colorific.Color) {
	r := colorific.Rect{X: x, Y: y, Width: w, Height: h}
	s.paint(x, y, x+w, y+h, c, r.Contains)
}

// FillCircle implements colorific.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c colorific.Color) {
	s.paint(cx-r, cy-r, cx+r, cy+r, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	})
}

// FillPolygon implements colorific.Surface.
func (s *Surface) FillPolygon(points []colorific.Vec2, c colorific.Color) {
	if len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	s.paint(minX, minY, maxX, maxY, c, func(x, y float64) bool {
		return insidePolygon(points, x, y)
	})
}

// DrawText implements colorific.Surface. Glyph size is ignored; every rune
// takes one cell on the row that holds the middle of the text.
func (s *Surface) DrawText(str string, x, y, size float64, align colorific.TextAlign, c colorific.Color) {
	runes := []rune(str)
	row := int(math.Floor((y - size*0.35) / s.sy))
	col := int(math.Floor(x / s.sx))
	switch align {
	case colorific.TextAlignCenter:
		col -= len(runes) / 2
	case colorific.TextAlignRight:
		col -= len(runes)
	}
	if row < 0 || row >= s.rows {
		return
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= s.cols {
			continue
		}
		idx := row*s.cols + cc
		if r == ' ' {
			s.text[idx] = glyph{}
			continue
		}
		// text colors are drawn opaque
		s.text[idx] = glyph{r: r, fg: blend(s.bg[idx], c)}
	}
}

// paint blends c into every cell whose centre lies inside the logical box
// [x0,x1]x[y0,y1] and satisfies inside.
func (s *Surface) paint(x0, y0, x1, y1 float64, c colorific.Color, inside func(x, y float64) bool) {
	if c.A <= 0 {
		return
	}
	c0 := max(int(math.Floor(x0/s.sx)), 0)
	c1 := min(int(math.Ceil(x1/s.sx)), s.cols-1)
	r0 := max(int(math.Floor(y0/s.sy)), 0)
	r1 := min(int(math.Ceil(y1/s.sy)), s.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := s.ToLogical(col, row)
			if !inside(x, y) {
				continue
			}
			idx := row*s.cols + col
			s.bg[idx] = blend(s.bg[idx], c)
			if c.A >= 1 {
				s.text[idx] = glyph{}
			}
		}
	}
}

// Flush copies the frame to screen and shows it.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			idx := row*s.cols + col
			style := tcell.StyleDefault.Background(toTcell(s.bg[idx]))
			r := ' '
			if g := s.text[idx]; g.r != 0 {
				r = g.r
				style = style.Foreground(toTcell(g.fg))
			}
			screen.SetContent(col, row, r, nil, style)
		}
	}
	screen.Show()
}

// blend composites src over dst. The result is always opaque.
func blend(dst, src colorific.Color) colorific.Color {
	a := colorific.Clamp(src.A, 0, 1)
	return colorific.Color{
		R: colorific.Lerp(dst.R, src.R, a),
		G: colorific.Lerp(dst.G, src.G, a),
		B: colorific.Lerp(dst.B, src.B, a),
		A: 1,
	}
}

func toTcell(c colorific.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(colorific.Clamp(c.R, 0, 1)*255+0.5),
		int32(colorific.Clamp(c.G, 0, 1)*255+0.5),
		int32(colorific.Clamp(c.B, 0, 1)*255+0.5),
	)
}

// insidePolygon is the even-odd rule.
func insidePolygon(points []colorific.Vec2, x, y float64) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}
