package colorific

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the random source used for cell colors, bonus colors and fall
// jitter. Boards own one each; it is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic source seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// DefaultRand returns a source seeded from the wall clock.
func DefaultRand() *Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// Int returns a uniform integer in [0, n). n <= 0 returns 0.
func (r *Rand) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float returns a uniform float in [0, v). Negative v yields (v, 0].
func (r *Rand) Float(v float64) float64 {
	return r.r.Float64() * v
}

// FloatRange returns a uniform float in [a, b).
func (r *Rand) FloatRange(a, b float64) float64 {
	return a + r.r.Float64()*(b-a)
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (rg Range) Random(r *Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return r.FloatRange(rg.Min, rg.Max)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
