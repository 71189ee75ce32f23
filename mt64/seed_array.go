package mt64

import "encoding/binary"

const (
	arraySeed   uint64 = 19650218
	arrayMult0  uint64 = 3935559000370003845
	arrayMult1  uint64 = 2862933555777941757
	arrayFirstW uint64 = 1 << 63 // guarantees a non-zero initial state
)

// SeedSlice initializes the state from a key of arbitrary length. Keys with
// few non-zero bits spread better through the state than a single-value Seed.
// An empty key is treated as the key {0}.
func (g *Generator) SeedSlice(key []uint64) {
	if len(key) == 0 {
		key = []uint64{0}
	}
	g.Seed(arraySeed)

	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		prev := g.words[i-1]
		g.words[i] = (g.words[i] ^ ((prev ^ (prev >> 62)) * arrayMult0)) + key[j] + uint64(j)
		i++
		j++
		if i >= n {
			g.words[0] = g.words[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := g.words[i-1]
		g.words[i] = (g.words[i] ^ ((prev ^ (prev >> 62)) * arrayMult1)) - uint64(i)
		i++
		if i >= n {
			g.words[0] = g.words[n-1]
			i = 1
		}
	}

	g.words[0] = arrayFirstW
	g.cursor = n
	g.mode = seeded
}

// SeedBytes packs b into big-endian 64-bit words, zero padding the final word,
// and seeds with SeedSlice.
func (g *Generator) SeedBytes(b []byte) {
	words := (len(b) + 7) / 8
	if len(b)%8 != 0 {
		padded := make([]byte, words*8)
		copy(padded, b)
		b = padded
	}

	key := make([]uint64, words)
	for i := range key {
		key[i] = binary.BigEndian.Uint64(b[i*8:])
	}
	g.SeedSlice(key)
}
