package core

import "math/rand/v2"

// NewRand returns a random source. A zero seed draws the PCG state from the
// runtime's randomly seeded generator, so every call yields a different
// sequence; any other seed is reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBernoulli sets each byte of buf to 1 with probability p and 0 otherwise.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
