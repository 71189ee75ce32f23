package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/mersenne/mt64"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 50 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewMatchesGenerator(t *testing.T) {
	g := mt64.NewSeeded(5489)
	want, err := g.Next()
	assert.NoError(t, err)
	assert.Equal(t, want, New(5489).Uint64())
}

func TestNegativeSeed(t *testing.T) {
	g := mt64.NewSeeded(^uint64(0))
	want, _ := g.Next()
	assert.Equal(t, want, New(-1).Uint64())
}

func TestNewFromKey(t *testing.T) {
	key := []uint64{0x12345, 0x23456, 0x34567, 0x45678}
	assert.Equal(t, uint64(7266447313870364031), NewFromKey(key).Uint64())
}
