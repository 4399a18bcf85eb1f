package models

import "math/rand/v2"

// NewRNG creates a deterministic RNG for the provided seed. Every engine
// derives all of its randomness from this so runs reproduce exactly.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
