package colorific

import "math"

// TurnResult describes one resolved click.
type TurnResult struct {
	// Selected lists the cleared slots in flood-fill visitation order.
	Selected []CellPos
	Color    ColorIndex
	// Base is the triangular chain score 1+2+...+len(Selected).
	Base int
	// Factor is the applied multiplier (0.5, 1, 2 or 4; doubled on a full
	// clear).
	Factor   float64
	Score    int
	FoundAll bool
}

// TriangularScore returns 1+2+...+n, the base score for a chain of n cells.
func TriangularScore(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// ScoreFactor returns the score multiplier for clearing color. The multiplier
// color doubles, the divider color halves, and clearing every remaining cell
// of the color doubles again. bonus reports whether multiplier and divider
// are assigned at all.
func ScoreFactor(color, multiplier, divider ColorIndex, bonus, foundAll bool) float64 {
	factor := 1.0
	if bonus {
		switch color {
		case multiplier:
			factor = 2
		case divider:
			factor = 0.5
		}
	}
	if foundAll {
		factor *= 2
	}
	return factor
}

// RoundHalfUp rounds v to the nearest integer, halves rounding up.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
