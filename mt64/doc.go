// Package mt64 implements the 64-bit Mersenne Twister (MT19937-64) pseudorandom
// number generator.
//
// The main type is Generator, an owned state machine holding 312 words of state
// and a cursor. A Generator must be seeded before any value is drawn from it.
//
// # Basic Usage
//
//	g := mt64.New()
//	g.Seed(5489)
//	v, err := g.Next() // 14514284786278117030
//
// Calling Next on a generator that was never seeded returns ErrNotSeeded.
//
// # Independent Streams
//
// A Generator is not safe for concurrent use. Code that needs several streams
// should give each goroutine its own Generator, or Clone a seeded one.
//
// # Standard Library Interop
//
// Source adapts a seeded Generator to math/rand.Source64 and math/rand/v2.Source:
//
//	rng := rand.New(mt64.NewSource(42))
//	n := rng.IntN(52)
//
// MT19937-64 is not a cryptographic generator. Its future output can be
// predicted from 312 consecutive values and it must never be used for secrets.
package mt64
