package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/mersenne/mt64"
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// All call sites derive their generators here so that a given seed always
// yields the same MT19937-64 sequence.
func New(seed int64) *rand.Rand {
	return rand.New(mt64.NewSource(uint64(seed)))
}

// NewFromKey returns a *rand.Rand seeded from a multi-word key.
func NewFromKey(key []uint64) *rand.Rand {
	src := mt64.NewSource(0)
	src.Generator().SeedSlice(key)
	return rand.New(src)
}
