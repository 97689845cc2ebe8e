package colorific

// neighborOffsets is the fixed visitation order of the flood fill:
// down, up, right, left.
var neighborOffsets = [4]CellPos{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// selectRegion marks and returns the 4-connected group of cells sharing the
// color of (row, col), in depth-first visitation order. The result aliases an
// internal buffer and is only valid until the next call.
//
// An explicit stack replaces recursion. Neighbors are pushed in reverse and
// checked when popped, which reproduces the recursive pre-order exactly.
func (b *Board) selectRegion(row, col int) []*Cell {
	b.selected = b.selected[:0]
	seed := b.Cell(row, col)
	if seed == nil {
		return b.selected
	}
	color := seed.Color

	b.stack = append(b.stack[:0], CellPos{Row: row, Col: col})
	for len(b.stack) > 0 {
		p := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		cell := b.Cell(p.Row, p.Col)
		if cell == nil || cell.Color != color || cell.selected {
			continue
		}
		cell.selected = true
		b.selected = append(b.selected, cell)

		for i := len(neighborOffsets) - 1; i >= 0; i-- {
			d := neighborOffsets[i]
			b.stack = append(b.stack, CellPos{Row: p.Row + d.Row, Col: p.Col + d.Col})
		}
	}
	return b.selected
}

// Region returns the slots that clicking (row, col) would clear, in
// visitation order, without changing the board.
func (b *Board) Region(row, col int) []CellPos {
	group := b.selectRegion(row, col)
	out := make([]CellPos, len(group))
	for i, cell := range group {
		out[i] = CellPos{Row: cell.Row, Col: cell.Col}
		cell.selected = false
	}
	return out
}
