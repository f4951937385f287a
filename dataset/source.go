package dataset

import "math/rand/v2"

// Source is the random stream synthetic data is drawn from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0)
	Float64() float64
	// NormFloat64 returns a standard normally distributed number
	NormFloat64() float64
}

// NewSeededSource returns a deterministic Source. Two sources with the same seed produce the same
// stream.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
