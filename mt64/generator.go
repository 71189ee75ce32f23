package mt64

import "errors"

const (
	w = 64  // word size
	n = 312 // degree of recurrence
	m = 156 // middle word offset
	r = 31  // separation point of one word

	matrixA uint64 = 0xB5026F5AA96619E9 // twist matrix coefficient

	// tempering shifts and masks
	uShift uint64 = 29
	uMask  uint64 = 0x5555555555555555
	sShift uint64 = 17
	sMask  uint64 = 0x71D67FFFEDA60000
	tShift uint64 = 37
	tMask  uint64 = 0xFFF7EEE000000000
	lShift uint64 = 43

	initMult uint64 = 6364136223846793005

	lowerMask uint64 = 1<<r - 1 // 31 least significant bits
	upperMask uint64 = ^lowerMask
)

// StateSize is the number of 64-bit words in the generator state.
const StateSize = n

// ErrNotSeeded is returned when a value is requested from a generator that has
// never been seeded.
var ErrNotSeeded = errors.New("mt64: generator was never seeded")

// mode tracks whether the state array has been populated.
type mode uint8

const (
	unseeded mode = iota
	seeded
)

func (md mode) String() string {
	switch md {
	case unseeded:
		return "unseeded"
	case seeded:
		return "seeded"
	default:
		return "unknown"
	}
}

// Generator is an MT19937-64 state machine. The zero value is an unseeded
// generator, equivalent to New().
type Generator struct {
	words  [n]uint64
	cursor int
	mode   mode
}

// New creates a generator with zero-filled state. It must be seeded before use.
func New() *Generator {
	return &Generator{}
}

// NewSeeded creates a generator and seeds it with seed.
func NewSeeded(seed uint64) *Generator {
	g := New()
	g.Seed(seed)
	return g
}

// Seed initializes the state from a single value, discarding any previous
// sequence position. Every value, including 0, is a valid seed.
func (g *Generator) Seed(seed uint64) {
	g.words[0] = seed
	for i := 1; i < n; i++ {
		prev := g.words[i-1]
		g.words[i] = initMult*(prev^(prev>>(w-2))) + uint64(i)
	}
	g.cursor = n
	g.mode = seeded
}

// Seeded reports whether the generator has been seeded.
func (g *Generator) Seeded() bool {
	return g.mode == seeded
}

// Cursor returns the index of the next state word to be tempered. It is n+1
// for an unseeded generator and n when a twist is due.
func (g *Generator) Cursor() int {
	if g.mode == unseeded {
		return n + 1
	}
	return g.cursor
}

// Reset returns the generator to the unseeded state and clears its words.
func (g *Generator) Reset() {
	*g = Generator{}
}

// Next returns the next tempered 64-bit value, regenerating the state array
// every n calls.
func (g *Generator) Next() (uint64, error) {
	if g.mode != seeded {
		return 0, ErrNotSeeded
	}
	if g.cursor >= n {
		g.twist()
	}

	y := g.words[g.cursor]
	g.cursor++
	return temper(y), nil
}

// twist regenerates all n words in place.
func (g *Generator) twist() {
	for i := 0; i < n; i++ {
		x := g.words[i]&upperMask | g.words[(i+1)%n]&lowerMask
		xA := x >> 1
		if x&1 != 0 {
			xA ^= matrixA
		}
		g.words[i] = g.words[(i+m)%n] ^ xA
	}
	g.cursor = 0
}

func temper(y uint64) uint64 {
	y ^= (y >> uShift) & uMask
	y ^= (y << sShift) & sMask
	y ^= (y << tShift) & tMask
	y ^= y >> lShift
	return y
}
