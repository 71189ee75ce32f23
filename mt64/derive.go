package mt64

import "errors"

// ErrInvalidBound is returned by Uint64n when the bound is zero.
var ErrInvalidBound = errors.New("mt64: bound must be positive")

// Int63 returns a non-negative value from the top 63 bits of Next.
func (g *Generator) Int63() (int64, error) {
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	return int64(v >> 1), nil
}

// Float64 returns a value in [0, 1) with 53 bits of precision.
func (g *Generator) Float64() (float64, error) {
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	return float64(v>>11) * (1.0 / 9007199254740992.0), nil
}

// Float64Closed returns a value in [0, 1].
func (g *Generator) Float64Closed() (float64, error) {
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	return float64(v>>11) * (1.0 / 9007199254740991.0), nil
}

// Float64Open returns a value in (0, 1).
func (g *Generator) Float64Open() (float64, error) {
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	return (float64(v>>12) + 0.5) * (1.0 / 4503599627370496.0), nil
}

// Uint64n returns a uniformly distributed value in [0, bound). Draws below the
// rejection threshold are discarded so that every residue is equally likely.
func (g *Generator) Uint64n(bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, ErrInvalidBound
	}
	if bound&(bound-1) == 0 {
		v, err := g.Next()
		return v & (bound - 1), err
	}

	threshold := -bound % bound
	for {
		v, err := g.Next()
		if err != nil {
			return 0, err
		}
		if v >= threshold {
			return v % bound, nil
		}
	}
}
