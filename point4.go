package essence

import (
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Point4 represents a position in homogeneous or 4D space.
// Points combine with vectors: point+vector is a point, point-point is a
// vector. Adding two points has no meaning and is not offered.
type Point4[T Scalar] struct {
	X, Y, Z, W T
}

// Point4 aliases by kind.
type (
	Point4d = Point4[float64]
	Point4f = Point4[float32]
	Point4i = Point4[int32]
	Point4b = Point4[uint8]
)

// P4 is a convenience function to create a Point4.
func P4[T Scalar](x, y, z, w T) Point4[T] {
	return Point4[T]{X: x, Y: y, Z: z, W: w}
}

func (p Point4[T]) isPoint() {}

// Add returns the point displaced by v.
func (p Point4[T]) Add(v Vector4[T]) Point4[T] {
	return Point4[T]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z, W: p.W + v.W}
}

// Sub returns the vector from q to p.
func (p Point4[T]) Sub(q Point4[T]) Vector4[T] {
	return Vector4[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z, W: p.W - q.W}
}

// SubVector returns the point displaced by -v.
func (p Point4[T]) SubVector(v Vector4[T]) Point4[T] {
	return Point4[T]{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z, W: p.W - v.W}
}

// Lerp interpolates from p (alpha=0) to q (alpha=1).
func (p Point4[T]) Lerp(q Point4[T], alpha float64) Point4[T] {
	return Point4[T]{
		X: fromFloat[T](lerpScalar(p.X, q.X, alpha)),
		Y: fromFloat[T](lerpScalar(p.Y, q.Y, alpha)),
		Z: fromFloat[T](lerpScalar(p.Z, q.Z, alpha)),
		W: fromFloat[T](lerpScalar(p.W, q.W, alpha)),
	}
}

// Lineal returns the linear combination alpha*p + beta*q.
func (p Point4[T]) Lineal(q Point4[T], alpha, beta float64) Point4[T] {
	return Point4[T]{
		X: fromFloat[T](alpha*float64(p.X) + beta*float64(q.X)),
		Y: fromFloat[T](alpha*float64(p.Y) + beta*float64(q.Y)),
		Z: fromFloat[T](alpha*float64(p.Z) + beta*float64(q.Z)),
		W: fromFloat[T](alpha*float64(p.W) + beta*float64(q.W)),
	}
}

// DistanceSq returns the squared distance between two points.
func (p Point4[T]) DistanceSq(q Point4[T]) float64 {
	var d, sum float64
	d = float64(p.X) - float64(q.X)
	sum += d * d
	d = float64(p.Y) - float64(q.Y)
	sum += d * d
	d = float64(p.Z) - float64(q.Z)
	sum += d * d
	d = float64(p.W) - float64(q.W)
	sum += d * d
	return sum
}

// Distance returns the distance between two points.
func (p Point4[T]) Distance(q Point4[T]) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// ToVector returns the displacement from the origin to p.
func (p Point4[T]) ToVector() Vector4[T] {
	return Vector4[T]{X: p.X, Y: p.Y, Z: p.Z, W: p.W}
}

// IsOrigin reports whether every component is zero.
func (p Point4[T]) IsOrigin() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0 && p.W == 0
}

func point4From[T Scalar](c Components) Point4[T] {
	return Point4[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2]), W: T(c.V[3])}
}

func (p Point4[T]) Shape() Shape { return shapeOf[T](4, RolePoint) }

func (p Point4[T]) Len() int { return 4 }

func (p Point4[T]) Index(i int) (float64, error) { return p.Components().Index(i) }

// Components returns the plain data of p.
func (p Point4[T]) Components() Components {
	return components4(p.Shape(), p.X, p.Y, p.Z, p.W)
}

// XYZW returns the components.
func (p Point4[T]) XYZW() (T, T, T, T) { return p.X, p.Y, p.Z, p.W }

// Equal reports whether other has the same shape and component values.
func (p Point4[T]) Equal(other Tuple) bool { return equalComponents(p.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of p,
// is within eps of p in every component.
func (p Point4[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(p.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (p Point4[T]) Hash() uint64 { return hashComponents(p.Components()) }

func (p Point4[T]) String() string {
	return formatComponents(p.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (p Point4[T]) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Point4[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, p.Shape())
	if err != nil {
		return err
	}
	*p = point4From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p Point4[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, p.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Point4[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, p.Shape())
	if err != nil {
		return err
	}
	*p = point4From[T](c)
	return nil
}
