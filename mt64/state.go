package mt64

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrBadState is returned when a snapshot cannot be restored.
var ErrBadState = errors.New("mt64: invalid state snapshot")

const (
	stateMagic   = "MT64"
	stateVersion = 1
	headerLen    = 8
	snapshotLen  = headerLen + n*8
)

var (
	_ encoding.BinaryMarshaler   = (*Generator)(nil)
	_ encoding.BinaryUnmarshaler = (*Generator)(nil)
)

// MarshalBinary encodes the full generator state. Layout: "MT64", version,
// mode, big-endian uint16 cursor, then the state words big-endian.
func (g *Generator) MarshalBinary() ([]byte, error) {
	buf := make([]byte, snapshotLen)
	copy(buf, stateMagic)
	buf[4] = stateVersion
	buf[5] = byte(g.mode)
	binary.BigEndian.PutUint16(buf[6:], uint16(g.cursor))
	for i, word := range g.words {
		binary.BigEndian.PutUint64(buf[headerLen+i*8:], word)
	}
	return buf, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. On error the
// generator is left unchanged.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotLen {
		return fmt.Errorf("%w: length %d, want %d", ErrBadState, len(data), snapshotLen)
	}
	if string(data[:4]) != stateMagic {
		return fmt.Errorf("%w: bad magic %q", ErrBadState, data[:4])
	}
	if data[4] != stateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadState, data[4])
	}

	md := mode(data[5])
	if md != unseeded && md != seeded {
		return fmt.Errorf("%w: unknown mode %d", ErrBadState, data[5])
	}
	cursor := int(binary.BigEndian.Uint16(data[6:]))
	if cursor > n {
		return fmt.Errorf("%w: cursor %d out of range", ErrBadState, cursor)
	}

	var restored Generator
	restored.mode = md
	restored.cursor = cursor
	for i := range restored.words {
		restored.words[i] = binary.BigEndian.Uint64(data[headerLen+i*8:])
	}
	*g = restored
	return nil
}

// Clone returns an independent copy that continues the same sequence.
func (g *Generator) Clone() *Generator {
	clone := *g
	return &clone
}
