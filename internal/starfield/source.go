package starfield

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream the field samples from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source seeded from the wall clock.
func NewSource() Source {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>17|1))
}

// uniform returns a value in [lo, hi).
func uniform(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
