package engine

import "math/rand"

// Source supplies the randomness the engine injects into salary growth,
// relationship quality, personal growth, promotion draws, and the
// performance random walk. Each run owns its Source, so the engine stays
// deterministic under test while remaining stochastic in production.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Uniform returns a uniform draw in [lo, hi).
	Uniform(lo, hi float64) float64
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a seeded Source backed by math/rand. Runs with the
// same seed and input produce identical timelines.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
