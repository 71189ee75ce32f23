package mt64

import (
	"math/rand"
	randv2 "math/rand/v2"
)

// DefaultSeed is the seed of the MT19937-64 reference implementation. A zero
// Source seeds itself with it on first use.
const DefaultSeed uint64 = 5489

var (
	_ rand.Source   = (*Source)(nil)
	_ rand.Source64 = (*Source)(nil)
	_ randv2.Source = (*Source)(nil)
)

// Source adapts a Generator to math/rand.Source64 and math/rand/v2.Source.
// Unlike Generator, a Source can never be observed unseeded.
type Source struct {
	gen Generator
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	src := &Source{}
	src.gen.Seed(seed)
	return src
}

// Seed re-seeds the source. It satisfies math/rand.Source.
func (src *Source) Seed(seed int64) {
	src.gen.Seed(uint64(seed))
}

// Uint64 returns the next 64-bit value.
func (src *Source) Uint64() uint64 {
	if !src.gen.Seeded() {
		src.gen.Seed(DefaultSeed)
	}
	// Cannot fail once seeded.
	v, _ := src.gen.Next()
	return v
}

// Int63 returns a non-negative 63-bit value.
func (src *Source) Int63() int64 {
	return int64(src.Uint64() >> 1)
}

// Generator exposes the underlying generator, for snapshots and derived draws.
func (src *Source) Generator() *Generator {
	return &src.gen
}
