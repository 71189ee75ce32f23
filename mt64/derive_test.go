package mt64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedUnseeded(t *testing.T) {
	g := New()

	_, err := g.Int63()
	assert.ErrorIs(t, err, ErrNotSeeded)
	_, err = g.Float64()
	assert.ErrorIs(t, err, ErrNotSeeded)
	_, err = g.Float64Closed()
	assert.ErrorIs(t, err, ErrNotSeeded)
	_, err = g.Float64Open()
	assert.ErrorIs(t, err, ErrNotSeeded)
	_, err = g.Uint64n(10)
	assert.ErrorIs(t, err, ErrNotSeeded)
	_, err = g.Uint64n(8)
	assert.ErrorIs(t, err, ErrNotSeeded)
}

func TestInt63(t *testing.T) {
	g := NewSeeded(5489)
	v, err := g.Int63()
	require.NoError(t, err)
	assert.Equal(t, int64(7257142393139058515), v)
}

func TestFloatRanges(t *testing.T) {
	g := NewSeeded(2024)
	for range 5000 {
		f, err := g.Float64()
		require.NoError(t, err)
		assert.True(t, f >= 0 && f < 1, "Float64 %v", f)

		f, err = g.Float64Closed()
		require.NoError(t, err)
		assert.True(t, f >= 0 && f <= 1, "Float64Closed %v", f)

		f, err = g.Float64Open()
		require.NoError(t, err)
		assert.True(t, f > 0 && f < 1, "Float64Open %v", f)
	}
}

func TestUint64n(t *testing.T) {
	g := NewSeeded(7)

	_, err := g.Uint64n(0)
	assert.ErrorIs(t, err, ErrInvalidBound)

	tests := []struct {
		name  string
		bound uint64
	}{
		{"one", 1},
		{"power of two", 64},
		{"small", 6},
		{"card deck", 52},
		{"large odd", 1<<63 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 2000 {
				v, err := g.Uint64n(tt.bound)
				require.NoError(t, err)
				require.Less(t, v, tt.bound)
			}
		})
	}
}

func TestUint64nCoversRange(t *testing.T) {
	g := NewSeeded(11)
	seen := make(map[uint64]int)
	for range 6000 {
		v, err := g.Uint64n(6)
		require.NoError(t, err)
		seen[v]++
	}
	require.Len(t, seen, 6)
	for face, count := range seen {
		assert.InDelta(t, 1000, count, 200, "face %d", face)
	}
}
