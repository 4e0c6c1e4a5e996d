package sim

import "math/rand"

// Rand is the randomness capability consumed by the kernel.
// Satisfied by *math/rand.Rand; tests may supply fixed sequences to get
// exact, repeatable spawn positions and enemy motion.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)
