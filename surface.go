package colorific

import "math"

// Surface is the drawing target handed to Render calls. Coordinates are
// logical pixels with the origin at the top-left. Colors carry their own
// alpha; there is no global alpha state.
type Surface interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h float64)
	// Fill paints the whole surface.
	Fill(c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	// FillPolygon fills a closed polygon. Implementations may assume the
	// polygon is star-shaped around the centroid of its points.
	FillPolygon(points []Vec2, c Color)
	// DrawText draws s with its baseline at y. size is the nominal glyph
	// height in logical pixels.
	DrawText(s string, x, y, size float64, align TextAlign, c Color)
}

// StarPoints returns the outline of a star with the given number of points,
// alternating between radius r and r/2, starting on the positive X axis.
func StarPoints(cx, cy, r float64, points int, dst []Vec2) []Vec2 {
	dst = dst[:0]
	n := points * 2
	dst = append(dst, Vec2{cx + r, cy})
	for i := 1; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cr := r
		if i&1 == 1 {
			cr = r / 2
		}
		dst = append(dst, Vec2{cx + cr*math.Cos(a), cy + cr*math.Sin(a)})
	}
	return dst
}
