package shuffle

import (
	"fmt"

	"github.com/lox/mersenne/mt64"
)

// Shuffle permutes items in place using Fisher-Yates driven by g.
func Shuffle[T any](g *mt64.Generator, items []T) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := g.Uint64n(uint64(i + 1))
		if err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// Perm returns a pseudo-random permutation of [0, n).
func Perm(g *mt64.Generator, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("shuffle: negative length %d", n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if err := Shuffle(g, perm); err != nil {
		return nil, err
	}
	return perm, nil
}
