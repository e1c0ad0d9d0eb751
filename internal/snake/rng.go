package snake

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded randomness source for apple placement.
// A zero seed falls back to the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

var _ Rand = (*rand.Rand)(nil)
