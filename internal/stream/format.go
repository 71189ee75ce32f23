package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// Format selects how values are written.
type Format string

const (
	FormatDec Format = "dec"
	FormatHex Format = "hex"
	FormatBin Format = "bin" // raw big-endian 8-byte words
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDec, FormatHex, FormatBin:
		return f, nil
	case "":
		return FormatDec, nil
	default:
		return "", fmt.Errorf("unknown format %q (want dec, hex or bin)", s)
	}
}

// Write writes values to w, one per line for text formats.
func Write(w io.Writer, values []uint64, format Format) error {
	bw := bufio.NewWriter(w)
	var buf [20]byte

	for _, v := range values {
		var err error
		switch format {
		case FormatDec, "":
			_, err = bw.Write(strconv.AppendUint(buf[:0], v, 10))
			if err == nil {
				err = bw.WriteByte('\n')
			}
		case FormatHex:
			_, err = fmt.Fprintf(bw, "0x%016x\n", v)
		case FormatBin:
			_, err = bw.Write(binary.BigEndian.AppendUint64(buf[:0], v))
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
