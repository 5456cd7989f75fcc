package rng

import (
	"context"
	"math/rand"
)

// Adapter provides seeded math/rand streams. Determinism holds seed-for-seed
// within Go's math/rand source; sequences are not portable to other
// pseudo-random engines.
type Adapter struct{}

// New creates a new RNG adapter
func New() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named
// operation. The stream seed is derived from the base seed and the operation
// name, so every named operation in a run gets an independent but fully
// reproducible sequence.
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name != "" {
		seed += int64(hashString(name))
	}
	return rand.New(rand.NewSource(seed)), nil
}

func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
