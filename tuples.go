package essence

import "github.com/vmihailenco/msgpack/v5"

// Tuple2 is a pair of components without geometric meaning. Use Vector2 or
// Point2 when the value is a displacement or a position.
type Tuple2[T Scalar] struct {
	X, Y T
}

// Tuple3 is a triple of components without geometric meaning.
type Tuple3[T Scalar] struct {
	X, Y, Z T
}

// Tuple4 is a quadruple of components without geometric meaning.
type Tuple4[T Scalar] struct {
	X, Y, Z, W T
}

// Tuple aliases by kind.
type (
	Tuple2d = Tuple2[float64]
	Tuple2f = Tuple2[float32]
	Tuple2i = Tuple2[int32]
	Tuple2b = Tuple2[uint8]

	Tuple3d = Tuple3[float64]
	Tuple3f = Tuple3[float32]
	Tuple3i = Tuple3[int32]
	Tuple3b = Tuple3[uint8]

	Tuple4d = Tuple4[float64]
	Tuple4f = Tuple4[float32]
	Tuple4i = Tuple4[int32]
	Tuple4b = Tuple4[uint8]
)

// T2 returns the tuple (x, y).
func T2[T Scalar](x, y T) Tuple2[T] { return Tuple2[T]{X: x, Y: y} }

// T3 returns the tuple (x, y, z).
func T3[T Scalar](x, y, z T) Tuple3[T] { return Tuple3[T]{X: x, Y: y, Z: z} }

// T4 returns the tuple (x, y, z, w).
func T4[T Scalar](x, y, z, w T) Tuple4[T] { return Tuple4[T]{X: x, Y: y, Z: z, W: w} }

func tuple2From[T Scalar](c Components) Tuple2[T] {
	return Tuple2[T]{X: T(c.V[0]), Y: T(c.V[1])}
}

// Shape returns the tuple shape of dimension 2 and kind T.
func (t Tuple2[T]) Shape() Shape { return shapeOf[T](2, RoleTuple) }

// Len returns 2.
func (t Tuple2[T]) Len() int { return 2 }

// Index returns component i as float64.
func (t Tuple2[T]) Index(i int) (float64, error) { return t.Components().Index(i) }

// Components returns the plain data of t.
func (t Tuple2[T]) Components() Components {
	return components2(t.Shape(), t.X, t.Y)
}

// XY returns the components.
func (t Tuple2[T]) XY() (T, T) { return t.X, t.Y }

// Equal reports whether other has the same shape and component values.
func (t Tuple2[T]) Equal(other Tuple) bool { return equalComponents(t.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of t,
// is within eps of t in every component.
func (t Tuple2[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(t.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (t Tuple2[T]) Hash() uint64 { return hashComponents(t.Components()) }

func (t Tuple2[T]) String() string {
	return formatComponents(t.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (t Tuple2[T]) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tuple2[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple2From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Tuple2[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, t.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (t *Tuple2[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple2From[T](c)
	return nil
}

func tuple3From[T Scalar](c Components) Tuple3[T] {
	return Tuple3[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2])}
}

func (t Tuple3[T]) Shape() Shape { return shapeOf[T](3, RoleTuple) }

func (t Tuple3[T]) Len() int { return 3 }

func (t Tuple3[T]) Index(i int) (float64, error) { return t.Components().Index(i) }

// Components returns the plain data of t.
func (t Tuple3[T]) Components() Components {
	return components3(t.Shape(), t.X, t.Y, t.Z)
}

// XYZ returns the components.
func (t Tuple3[T]) XYZ() (T, T, T) { return t.X, t.Y, t.Z }

// Equal reports whether other has the same shape and component values.
func (t Tuple3[T]) Equal(other Tuple) bool { return equalComponents(t.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of t,
// is within eps of t in every component.
func (t Tuple3[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(t.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (t Tuple3[T]) Hash() uint64 { return hashComponents(t.Components()) }

func (t Tuple3[T]) String() string {
	return formatComponents(t.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (t Tuple3[T]) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tuple3[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple3From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Tuple3[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, t.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (t *Tuple3[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple3From[T](c)
	return nil
}

func tuple4From[T Scalar](c Components) Tuple4[T] {
	return Tuple4[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2]), W: T(c.V[3])}
}

func (t Tuple4[T]) Shape() Shape { return shapeOf[T](4, RoleTuple) }

func (t Tuple4[T]) Len() int { return 4 }

func (t Tuple4[T]) Index(i int) (float64, error) { return t.Components().Index(i) }

// Components returns the plain data of t.
func (t Tuple4[T]) Components() Components {
	return components4(t.Shape(), t.X, t.Y, t.Z, t.W)
}

// XYZW returns the components.
func (t Tuple4[T]) XYZW() (T, T, T, T) { return t.X, t.Y, t.Z, t.W }

// Equal reports whether other has the same shape and component values.
func (t Tuple4[T]) Equal(other Tuple) bool { return equalComponents(t.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of t,
// is within eps of t in every component.
func (t Tuple4[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(t.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (t Tuple4[T]) Hash() uint64 { return hashComponents(t.Components()) }

func (t Tuple4[T]) String() string {
	return formatComponents(t.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (t Tuple4[T]) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tuple4[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple4From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Tuple4[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, t.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (t *Tuple4[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, t.Shape())
	if err != nil {
		return err
	}
	*t = tuple4From[T](c)
	return nil
}
