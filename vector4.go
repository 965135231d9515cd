package essence

import (
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Vector4 is a 4D displacement vector, typically homogeneous coordinates.
type Vector4[T Scalar] struct {
	X, Y, Z, W T
}

// Vector4 aliases by kind.
type (
	Vector4d = Vector4[float64]
	Vector4f = Vector4[float32]
	Vector4i = Vector4[int32]
	Vector4b = Vector4[uint8]
)

// V4 is a convenience function to create a Vector4.
func V4[T Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

func (v Vector4[T]) isVector() {}

func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func (v Vector4[T]) Mul(s T) Vector4[T] {
	return Vector4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by s, or *DegenerateInputError for zero.
func (v Vector4[T]) Div(s T) (Vector4[T], error) {
	if s == 0 {
		return Vector4[T]{}, Degenerate("Vector4.Div", "division by zero")
	}
	return Vector4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}, nil
}

func (v Vector4[T]) Scale(f float64) Vector4[T] {
	return Vector4[T]{
		X: fromFloat[T](float64(v.X) * f),
		Y: fromFloat[T](float64(v.Y) * f),
		Z: fromFloat[T](float64(v.Z) * f),
		W: fromFloat[T](float64(v.W) * f),
	}
}

func (v Vector4[T]) Dot(o Vector4[T]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y) +
		float64(v.Z)*float64(o.Z) + float64(v.W)*float64(o.W)
}

func (v Vector4[T]) Length() float64 { return math.Sqrt(v.LengthSq()) }

func (v Vector4[T]) LengthSq() float64 { return v.Dot(v) }

// Unit returns a unit vector in the same direction, or
// *DegenerateInputError for a zero-length vector.
func (v Vector4[T]) Unit() (Vector4[T], error) {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vector4[T]{}, Degenerate("Vector4.Unit", "zero or non-finite length")
	}
	return v.Scale(1 / l), nil
}

func (v Vector4[T]) Lerp(o Vector4[T], t float64) Vector4[T] {
	return Vector4[T]{
		X: fromFloat[T](lerpScalar(v.X, o.X, t)),
		Y: fromFloat[T](lerpScalar(v.Y, o.Y, t)),
		Z: fromFloat[T](lerpScalar(v.Z, o.Z, t)),
		W: fromFloat[T](lerpScalar(v.W, o.W, t)),
	}
}

func (v Vector4[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// ToPoint returns the position reached by moving v from the origin.
func (v Vector4[T]) ToPoint() Point4[T] {
	return Point4[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

func vector4From[T Scalar](c Components) Vector4[T] {
	return Vector4[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2]), W: T(c.V[3])}
}

func (v Vector4[T]) Shape() Shape { return shapeOf[T](4, RoleVector) }

func (v Vector4[T]) Len() int { return 4 }

func (v Vector4[T]) Index(i int) (float64, error) { return v.Components().Index(i) }

// Components returns the plain data of v.
func (v Vector4[T]) Components() Components {
	return components4(v.Shape(), v.X, v.Y, v.Z, v.W)
}

// XYZW returns the components.
func (v Vector4[T]) XYZW() (T, T, T, T) { return v.X, v.Y, v.Z, v.W }

// Equal reports whether other has the same shape and component values.
func (v Vector4[T]) Equal(other Tuple) bool { return equalComponents(v.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of v,
// is within eps of v in every component.
func (v Vector4[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(v.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (v Vector4[T]) Hash() uint64 { return hashComponents(v.Components()) }

func (v Vector4[T]) String() string {
	return formatComponents(v.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (v Vector4[T]) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector4[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, v.Shape())
	if err != nil {
		return err
	}
	*v = vector4From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Vector4[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, v.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Vector4[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, v.Shape())
	if err != nil {
		return err
	}
	*v = vector4From[T](c)
	return nil
}
