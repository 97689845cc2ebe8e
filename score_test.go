package colorific

import "testing"

func TestTriangularScore(t *testing.T) {
	tests := []struct{ n, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {2, 3}, {6, 21}, {9, 45}, {49, 1225},
	}
	for _, tt := range tests {
		if got := TriangularScore(tt.n); got != tt.want {
			t.Errorf("TriangularScore(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestScoreFactor(t *testing.T) {
	tests := []struct {
		name          string
		color         ColorIndex
		bonus, all    bool
		want          float64
	}{
		{"plain", 3, true, false, 1},
		{"multiplier", 0, true, false, 2},
		{"divider", 1, true, false, 0.5},
		{"plain full clear", 3, true, true, 2},
		{"multiplier full clear", 0, true, true, 4},
		{"divider full clear", 1, true, true, 1},
		{"no bonus colors", 0, false, false, 1},
		{"wildcard", Wildcard, true, false, 1},
	}
	for _, tt := range tests {
		if got := ScoreFactor(tt.color, 0, 1, tt.bonus, tt.all); got != tt.want {
			t.Errorf("%s: ScoreFactor = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0}, {0.49, 0}, {0.5, 1}, {1.5, 2}, {2.5, 3}, {10.5, 11}, {3, 3},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
