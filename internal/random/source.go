package random

import "math/rand"

// Source produces uniformly distributed integers.
type Source interface {
	// Uniform returns an integer in [low, high] inclusive. Callers must
	// guarantee low <= high.
	Uniform(low, high int) int
}

// Rand is a Source backed by a seeded math/rand generator.
//
// Rand is not safe for concurrent use; the command loop owns a single
// instance.
type Rand struct {
	rng *rand.Rand
}

// New returns a Rand seeded from crypto/rand.
func New() (*Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewWithSeed(seed), nil
}

// NewWithSeed returns a Rand that always produces the same sequence for the
// same seed.
func NewWithSeed(seed int64) *Rand {
	return &Rand{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Uniform returns an integer in [low, high] inclusive.
func (r *Rand) Uniform(low, high int) int {
	return low + r.rng.Intn(high-low+1)
}
