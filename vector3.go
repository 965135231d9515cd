package essence

import (
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Vector3 represents a 3D displacement vector.
type Vector3[T Scalar] struct {
	X, Y, Z T
}

// Vector3 aliases by kind.
type (
	Vector3d = Vector3[float64]
	Vector3f = Vector3[float32]
	Vector3i = Vector3[int32]
	Vector3b = Vector3[uint8]
)

// V3 is a convenience function to create a Vector3.
func V3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func (v Vector3[T]) isVector() {}

// Add returns the sum of two vectors.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the negation of the vector.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the vector multiplied by a scalar of its own kind.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by s, or *DegenerateInputError for zero.
func (v Vector3[T]) Div(s T) (Vector3[T], error) {
	if s == 0 {
		return Vector3[T]{}, Degenerate("Vector3.Div", "division by zero")
	}
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}, nil
}

// Scale returns the vector scaled by a real factor.
func (v Vector3[T]) Scale(f float64) Vector3[T] {
	return Vector3[T]{
		X: fromFloat[T](float64(v.X) * f),
		Y: fromFloat[T](float64(v.Y) * f),
		Z: fromFloat[T](float64(v.Z) * f),
	}
}

// Dot returns the dot product of two vectors.
func (v Vector3[T]) Dot(w Vector3[T]) float64 {
	return float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y) + float64(v.Z)*float64(w.Z)
}

// Cross returns the cross product v × w.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length of the vector.
func (v Vector3[T]) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// LengthSq returns the squared length of the vector.
func (v Vector3[T]) LengthSq() float64 {
	return v.Dot(v)
}

// Unit returns a unit vector in the same direction, or
// *DegenerateInputError for a zero-length vector.
func (v Vector3[T]) Unit() (Vector3[T], error) {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vector3[T]{}, Degenerate("Vector3.Unit", "zero or non-finite length")
	}
	return v.Scale(1 / l), nil
}

// Lerp performs linear interpolation between two vectors.
func (v Vector3[T]) Lerp(w Vector3[T], t float64) Vector3[T] {
	return Vector3[T]{
		X: fromFloat[T](lerpScalar(v.X, w.X, t)),
		Y: fromFloat[T](lerpScalar(v.Y, w.Y, t)),
		Z: fromFloat[T](lerpScalar(v.Z, w.Z, t)),
	}
}

// IsZero returns true if all components are zero.
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ToPoint returns the position reached by moving v from the origin.
func (v Vector3[T]) ToPoint() Point3[T] {
	return Point3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

func vector3From[T Scalar](c Components) Vector3[T] {
	return Vector3[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2])}
}

func (v Vector3[T]) Shape() Shape { return shapeOf[T](3, RoleVector) }

func (v Vector3[T]) Len() int { return 3 }

func (v Vector3[T]) Index(i int) (float64, error) { return v.Components().Index(i) }

// Components returns the plain data of v.
func (v Vector3[T]) Components() Components {
	return components3(v.Shape(), v.X, v.Y, v.Z)
}

// XYZ returns the components.
func (v Vector3[T]) XYZ() (T, T, T) { return v.X, v.Y, v.Z }

// Equal reports whether other has the same shape and component values.
func (v Vector3[T]) Equal(other Tuple) bool { return equalComponents(v.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of v,
// is within eps of v in every component.
func (v Vector3[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(v.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (v Vector3[T]) Hash() uint64 { return hashComponents(v.Components()) }

func (v Vector3[T]) String() string {
	return formatComponents(v.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (v Vector3[T]) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector3[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, v.Shape())
	if err != nil {
		return err
	}
	*v = vector3From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Vector3[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, v.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Vector3[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, v.Shape())
	if err != nil {
		return err
	}
	*v = vector3From[T](c)
	return nil
}
