package essence

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// appendComponents appends the shape bytes and the little-endian float64
// bits of every component. -0 is folded to +0 so that equal values hash
// alike.
func appendComponents(buf []byte, c Components) []byte {
	buf = append(buf, byte(c.Shape.Dim), byte(c.Shape.Role), byte(c.Shape.Kind))
	for i := 0; i < c.Shape.Dim; i++ {
		v := c.V[i]
		if v == 0 {
			v = 0
		}
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

// hashComponents returns a deterministic hash of the shape and component
// values. The result is stable across processes.
func hashComponents(c Components) uint64 {
	var buf [3 + 4*8]byte
	return xxhash.Sum64(appendComponents(buf[:0], c))
}

// hashPair hashes two component sets as one value.
func hashPair(a, b Components) uint64 {
	var buf [2 * (3 + 4*8)]byte
	return xxhash.Sum64(appendComponents(appendComponents(buf[:0], a), b))
}
