package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/colorific"
)

// glyphHeight is the pixel height basicfont.Face7x13 is designed at; text
// sizes are scaled relative to it.
const glyphHeight = 13

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Polygons are drawn with it as their source; color comes from the vertices.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Surface draws onto an ebiten.Image. It is rebound to the screen image at
// the start of every Draw.
type Surface struct {
	img  *ebiten.Image
	face *text.GoXFace

	verts []ebiten.Vertex
	inds  []uint16
}

// NewSurface creates a surface drawing with the built-in bitmap font.
func NewSurface() *Surface {
	return &Surface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Bind sets the target image.
func (s *Surface) Bind(img *ebiten.Image) {
	s.img = img
}

// Size implements colorific.Surface.
func (s *Surface) Size() (w, h float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Fill implements colorific.Surface.
func (s *Surface) Fill(c colorific.Color) {
	s.img.Fill(c.RGBA())
}

// FillRect implements colorific.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c colorific.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

// FillCircle implements colorific.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c colorific.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.RGBA(), true)
}

// FillPolygon implements colorific.Surface. The polygon is fanned from its
// centroid, which is correct for convex and star-shaped outlines.
func (s *Surface) FillPolygon(points []colorific.Vec2, c colorific.Color) {
	s.verts, s.inds = buildCentroidFan(points, c, s.verts[:0], s.inds[:0])
	if len(s.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	s.img.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &op)
}

// DrawText implements colorific.Surface. y is the baseline.
func (s *Surface) DrawText(str string, x, y, size float64, align colorific.TextAlign, c colorific.Color) {
	scale := size / glyphHeight
	ascent := s.face.Metrics().HAscent

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-ascent*scale)
	op.ColorScale.ScaleWithColor(c.RGBA())
	switch align {
	case colorific.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case colorific.TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.img, str, s.face, op)
}

// buildCentroidFan appends vertices and indices for a filled polygon to
// verts and inds. Vertex 0 is the centroid; the outline follows.
// N points give N+1 vertices and 3*N indices.
func buildCentroidFan(points []colorific.Vec2, c colorific.Color, verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}

	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(n)
	cy /= float64(n)

	a := float32(colorific.Clamp(c.A, 0, 1))
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: a,
		}
	}

	verts = append(verts, vertex(cx, cy))
	for _, p := range points {
		verts = append(verts, vertex(p.X, p.Y))
	}
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		inds = append(inds, 0, uint16(i+1), uint16(next))
	}
	return verts, inds
}
