package essence

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Binary encoding: every tuple type encodes as a msgpack array of its
// components in their native kind, so a Vector3f costs three float32 and a
// Color4b four uint8.

func encodeComponents(enc *msgpack.Encoder, c Components) error {
	if err := enc.EncodeArrayLen(c.Shape.Dim); err != nil {
		return err
	}
	for i := 0; i < c.Shape.Dim; i++ {
		var err error
		switch c.Shape.Kind {
		case KindFloat64:
			err = enc.EncodeFloat64(c.V[i])
		case KindFloat32:
			err = enc.EncodeFloat32(float32(c.V[i]))
		case KindInt32:
			err = enc.EncodeInt32(int32(c.V[i]))
		case KindUint8:
			err = enc.EncodeUint8(uint8(c.V[i]))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func decodeComponents(dec *msgpack.Decoder, s Shape) (Components, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return Components{}, err
	}
	if n != s.Dim {
		return Components{}, fmt.Errorf("essence: decode %v: got %d components, want %d", s, n, s.Dim)
	}
	c := Components{Shape: s}
	for i := 0; i < n; i++ {
		switch s.Kind {
		case KindFloat64:
			c.V[i], err = dec.DecodeFloat64()
		case KindFloat32:
			var f float32
			f, err = dec.DecodeFloat32()
			c.V[i] = float64(f)
		case KindInt32:
			var v int32
			v, err = dec.DecodeInt32()
			c.V[i] = float64(v)
		case KindUint8:
			var v uint8
			v, err = dec.DecodeUint8()
			c.V[i] = float64(v)
		}
		if err != nil {
			return Components{}, fmt.Errorf("essence: decode %v component %d: %w", s, i, err)
		}
	}
	return c, nil
}

// unmarshalText parses invariant-culture text into components of shape s.
func unmarshalText(text []byte, s Shape) (Components, error) {
	return parseComponents(string(text), s, defaultFormatOptions())
}

func encodeCorners(enc *msgpack.Encoder, lo, hi Components) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeComponents(enc, lo); err != nil {
		return err
	}
	return encodeComponents(enc, hi)
}

func decodeCorners(dec *msgpack.Decoder, s Shape) (lo, hi Components, err error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return lo, hi, err
	}
	if n != 2 {
		return lo, hi, fmt.Errorf("essence: decode box: got %d corners, want 2", n)
	}
	if lo, err = decodeComponents(dec, s); err != nil {
		return lo, hi, err
	}
	hi, err = decodeComponents(dec, s)
	return lo, hi, err
}
