package essence

import (
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Vector2 represents a 2D displacement vector.
// Unlike Point2 which represents a position, Vector2 represents a direction
// and magnitude. Integer and byte kinds use Go integer arithmetic, so sums
// wrap; results computed in floating point (Scale, Lerp, Unit, Rotate) are
// truncated back to the kind.
type Vector2[T Scalar] struct {
	X, Y T
}

// Vector2 aliases by kind.
type (
	Vector2d = Vector2[float64]
	Vector2f = Vector2[float32]
	Vector2i = Vector2[int32]
	Vector2b = Vector2[uint8]
)

// V2 is a convenience function to create a Vector2.
func V2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) isVector() {}

// Add returns the sum of two vectors.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the negation of the vector.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

// Mul returns the vector multiplied by a scalar of its own kind.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s. Dividing by zero is a
// *DegenerateInputError for every kind.
func (v Vector2[T]) Div(s T) (Vector2[T], error) {
	if s == 0 {
		return Vector2[T]{}, Degenerate("Vector2.Div", "division by zero")
	}
	return Vector2[T]{X: v.X / s, Y: v.Y / s}, nil
}

// Scale returns the vector scaled by a real factor.
func (v Vector2[T]) Scale(f float64) Vector2[T] {
	return Vector2[T]{X: fromFloat[T](float64(v.X) * f), Y: fromFloat[T](float64(v.Y) * f)}
}

// Dot returns the dot product of two vectors.
func (v Vector2[T]) Dot(w Vector2[T]) float64 {
	return float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y)
}

// Cross returns the 2D cross product (perp-dot), the z-component of the 3D
// cross product with z=0. Positive when w is counter-clockwise from v.
func (v Vector2[T]) Cross(w Vector2[T]) float64 {
	return float64(v.X)*float64(w.Y) - float64(v.Y)*float64(w.X)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vector2[T]) Perp() Vector2[T] {
	return Vector2[T]{X: -v.Y, Y: v.X}
}

// Length returns the length (magnitude) of the vector.
func (v Vector2[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vector2[T]) LengthSq() float64 {
	return v.Dot(v)
}

// Unit returns a unit vector in the same direction.
// A zero-length vector has no direction and yields *DegenerateInputError.
func (v Vector2[T]) Unit() (Vector2[T], error) {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vector2[T]{}, Degenerate("Vector2.Unit", "zero or non-finite length")
	}
	return v.Scale(1 / l), nil
}

// Angle returns the angle of the vector in radians, measured from the
// positive x-axis in (-π, π].
func (v Vector2[T]) Angle() float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

// Rotate returns the vector rotated by angle radians counter-clockwise.
func (v Vector2[T]) Rotate(angle float64) Vector2[T] {
	sin, cos := math.Sincos(angle)
	x, y := float64(v.X), float64(v.Y)
	return Vector2[T]{X: fromFloat[T](x*cos - y*sin), Y: fromFloat[T](x*sin + y*cos)}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vector2[T]) Lerp(w Vector2[T], t float64) Vector2[T] {
	return Vector2[T]{
		X: fromFloat[T](lerpScalar(v.X, w.X, t)),
		Y: fromFloat[T](lerpScalar(v.Y, w.Y, t)),
	}
}

// IsZero returns true if both components are zero.
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ToPoint returns the position reached by moving v from the origin.
func (v Vector2[T]) ToPoint() Point2[T] {
	return Point2[T]{X: v.X, Y: v.Y}
}

func vector2From[T Scalar](c Components) Vector2[T] {
	return Vector2[T]{X: T(c.V[0]), Y: T(c.V[1])}
}

// Shape returns the vector shape of dimension 2 and kind T.
func (v Vector2[T]) Shape() Shape { return shapeOf[T](2, RoleVector) }

// Len returns 2.
func (v Vector2[T]) Len() int { return 2 }

// Index returns component i as float64.
func (v Vector2[T]) Index(i int) (float64, error) { return v.Components().Index(i) }

// Components returns the plain data of v.
func (v Vector2[T]) Components() Components {
	return components2(v.Shape(), v.X, v.Y)
}

// XY returns the components.
func (v Vector2[T]) XY() (T, T) { return v.X, v.Y }

// Equal reports whether other has the same shape and component values.
func (v Vector2[T]) Equal(other Tuple) bool { return equalComponents(v.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of v,
// is within eps of v in every component.
func (v Vector2[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(v.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (v Vector2[T]) Hash() uint64 { return hashComponents(v.Components()) }

func (v Vector2[T]) String() string {
	return formatComponents(v.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (v Vector2[T]) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector2[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, v.Shape())
	if err != nil {
		return err
	}
	*v = vector2From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Vector2[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, v.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Vector2[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, v.Shape())
	if err != nil {
		return err
	}
	*v = vector2From[T](c)
	return nil
}
