package colorific

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface converts it for drawing.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the built-in screens.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorOrange = Color{1, 0xAA / 255.0, 0x66 / 255.0, 1}
	ColorRed    = Color{1, 0, 0, 1}
)

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := Clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(Clamp(c.R*a, 0, 1) * 255),
		G: uint8(Clamp(c.G*a, 0, 1) * 255),
		B: uint8(Clamp(c.B*a, 0, 1) * 255),
		A: uint8(a * 255),
	}
}

// Hex formats c as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(Clamp(c.R, 0, 1)*255),
		uint8(Clamp(c.G, 0, 1)*255),
		uint8(Clamp(c.B, 0, 1)*255))
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: float64(v>>24&0xFF) / 255,
		G: float64(v>>16&0xFF) / 255,
		B: float64(v>>8&0xFF) / 255,
		A: float64(v&0xFF) / 255,
	}, nil
}

// Vec2 is a 2D vector used for positions and polygon points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive so adjacent grid cells never share
// a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// TextAlign controls horizontal text alignment relative to the anchor point.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the left edge (default)
	TextAlignCenter                  // anchor is the horizontal centre
	TextAlignRight                   // anchor is the right edge
)

// ColorIndex selects an entry of the board palette. Valid gameplay values are
// 0..PaletteSize-1; Wildcard is reserved and never produced by spawning.
type ColorIndex int

// Wildcard is drawn as a white star. Matching is plain equality, so a
// wildcard cell only ever groups with other wildcard cells.
const Wildcard ColorIndex = -1

// IsWildcard reports whether c is the reserved wildcard marker.
func (c ColorIndex) IsWildcard() bool {
	return c == Wildcard
}

// Palette maps color indices to display colors.
type Palette []Color

// DefaultPalette is the four-color set the game ships with.
var DefaultPalette = Palette{
	RGB(255, 0, 0),
	RGB(0, 200, 0),
	RGB(255, 255, 0),
	RGB(0, 128, 255),
}

// Color returns the display color for idx. Wildcard and out-of-range indices
// map to white.
func (p Palette) Color(idx ColorIndex) Color {
	if idx < 0 || int(idx) >= len(p) {
		return ColorWhite
	}
	return p[idx]
}
