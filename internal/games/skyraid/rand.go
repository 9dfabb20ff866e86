package skyraid

import "math/rand"

// Rand is the random source used for spawn decisions.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source for deterministic runs.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
