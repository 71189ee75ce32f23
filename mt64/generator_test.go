package mt64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Published MT19937-64 outputs for the reference default seed.
var referenceSeed5489 = []uint64{
	14514284786278117030,
	4620546740167642908,
}

const reference10000th uint64 = 9981545732273789042

func draw(t *testing.T, g *Generator, count int) []uint64 {
	t.Helper()
	out := make([]uint64, count)
	for i := range out {
		v, err := g.Next()
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestReferenceVector(t *testing.T) {
	g := NewSeeded(5489)

	got := draw(t, g, len(referenceSeed5489))
	assert.Equal(t, referenceSeed5489, got)

	for i := len(referenceSeed5489); i < 9999; i++ {
		_, err := g.Next()
		require.NoError(t, err)
	}
	v, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, reference10000th, v, "10000th value")
}

func TestNextUnseeded(t *testing.T) {
	g := New()
	for range 3 {
		_, err := g.Next()
		require.ErrorIs(t, err, ErrNotSeeded)
	}
	assert.False(t, g.Seeded())
	assert.Equal(t, n+1, g.Cursor())

	var zero Generator
	_, err := zero.Next()
	assert.ErrorIs(t, err, ErrNotSeeded)
}

func TestDeterminism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 5489, 1 << 32, math.MaxUint64} {
		a, b := NewSeeded(seed), NewSeeded(seed)
		assert.Equal(t, draw(t, a, 1000), draw(t, b, 1000), "seed %d", seed)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := NewSeeded(12345), NewSeeded(54321)
	assert.NotEqual(t, draw(t, a, 10), draw(t, b, 10))
}

func TestReseedRestartsSequence(t *testing.T) {
	g := NewSeeded(777)
	first := draw(t, g, 500)

	g.Seed(777)
	assert.Equal(t, n, g.Cursor())
	assert.Equal(t, first, draw(t, g, 500))
}

func TestReseedAfterOtherSeed(t *testing.T) {
	g := NewSeeded(1)
	draw(t, g, 10)
	g.Seed(2)
	assert.Equal(t, draw(t, NewSeeded(2), 10), draw(t, g, 10))
}

func TestTwistBoundary(t *testing.T) {
	g := NewSeeded(5489)
	assert.Equal(t, n, g.Cursor(), "seeding leaves a twist due")

	values := draw(t, g, n)
	assert.Equal(t, n, g.Cursor())

	before := g.words
	next := draw(t, g, 1)[0]
	assert.Equal(t, 1, g.Cursor(), "cursor wraps to 0 then advances")
	assert.NotEqual(t, before, g.words, "state regenerated")
	assert.NotEqual(t, values[0], next)
}

func TestNextDoesNotMutateWords(t *testing.T) {
	g := NewSeeded(99)
	draw(t, g, 1) // force the first twist

	before := g.words
	draw(t, g, n-1)
	assert.Equal(t, before, g.words)
}

func TestSeedFillsEveryWord(t *testing.T) {
	g := NewSeeded(5489)
	prev := g.words[n-2]
	want := initMult*(prev^(prev>>62)) + uint64(n-1)
	assert.Equal(t, want, g.words[n-1])
	assert.NotZero(t, g.words[n-1])
}

func TestZeroSeed(t *testing.T) {
	g := NewSeeded(0)
	values := draw(t, g, n+1)
	nonZero := 0
	for _, v := range values {
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, n/2)
}

func TestWraparoundSeeds(t *testing.T) {
	for _, seed := range []uint64{math.MaxUint64, math.MaxUint64 - 1, 1 << 63, math.MaxUint64 >> 1} {
		g := NewSeeded(seed)
		assert.NotPanics(t, func() { draw(t, g, 3*n) })
	}
}

// referenceTwist is the three-loop form of the reference implementation.
func referenceTwist(mt *[n]uint64) {
	mix := func(x uint64) uint64 {
		xA := x >> 1
		if x&1 != 0 {
			xA ^= matrixA
		}
		return xA
	}
	var i int
	for ; i < n-m; i++ {
		x := mt[i]&upperMask | mt[i+1]&lowerMask
		mt[i] = mt[i+m] ^ mix(x)
	}
	for ; i < n-1; i++ {
		x := mt[i]&upperMask | mt[i+1]&lowerMask
		mt[i] = mt[i+m-n] ^ mix(x)
	}
	x := mt[n-1]&upperMask | mt[0]&lowerMask
	mt[n-1] = mt[m-1] ^ mix(x)
}

func TestTwistMatchesReferenceForm(t *testing.T) {
	g := NewSeeded(31337)
	want := g.words
	for range 3 {
		referenceTwist(&want)
		g.twist()
		require.Equal(t, want, g.words)
		assert.Equal(t, 0, g.Cursor())
	}
}

func TestResetReturnsToUnseeded(t *testing.T) {
	g := NewSeeded(5)
	draw(t, g, 3)
	g.Reset()

	_, err := g.Next()
	assert.ErrorIs(t, err, ErrNotSeeded)
	assert.Equal(t, [n]uint64{}, g.words)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "unseeded", unseeded.String())
	assert.Equal(t, "seeded", seeded.String())
	assert.Equal(t, "unknown", mode(7).String())
}

func BenchmarkNext(b *testing.B) {
	g := NewSeeded(5489)
	for b.Loop() {
		_, _ = g.Next()
	}
}

func BenchmarkSeed(b *testing.B) {
	g := New()
	for b.Loop() {
		g.Seed(12341324)
	}
}
