package colorific

// Cell is a single token on the board. Row and Col are authoritative; X and Y
// are the render position relative to the board origin and lag behind Row
// while the cell falls.
type Cell struct {
	Col, Row int
	X, Y     float64
	// VY is the fall velocity in pixels per tick.
	VY    float64
	Color ColorIndex

	selected bool
	falling  bool
}

// Advance integrates the fall towards the target row. While above the target
// the cell moves by VY and accelerates by gravity*dt; once it reaches or
// passes the target it snaps exactly onto it and stops.
func (c *Cell) Advance(dt, cellHeight, gravity float64) {
	target := float64(c.Row) * cellHeight
	if c.Y < target {
		c.Y += c.VY
		c.VY += gravity * dt
		c.falling = true
	}
	if c.Y >= target {
		c.Y = target
		c.VY = 0
		c.falling = false
	}
}

// Falling reports whether the cell was still above its target row after the
// last Advance.
func (c *Cell) Falling() bool { return c.falling }

// Selected reports whether the cell belongs to the group being resolved.
func (c *Cell) Selected() bool { return c.selected }

// CellPos identifies a grid slot.
type CellPos struct {
	Row, Col int
}
