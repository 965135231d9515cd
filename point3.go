package essence

import (
	"math"

	"github.com/gogpu/essence/mathutil"
	"github.com/vmihailenco/msgpack/v5"
)

// Point3 represents a 3D position.
// Points combine with vectors: point+vector is a point, point-point is a
// vector. Adding two points has no meaning and is not offered.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Point3 aliases by kind.
type (
	Point3d = Point3[float64]
	Point3f = Point3[float32]
	Point3i = Point3[int32]
	Point3b = Point3[uint8]
)

// P3 is a convenience function to create a Point3.
func P3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

func (p Point3[T]) isPoint() {}

// Add returns the point displaced by v.
func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	return Point3[T]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vector3[T] {
	return Vector3[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// SubVector returns the point displaced by -v.
func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	return Point3[T]{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

// Lerp interpolates from p (alpha=0) to q (alpha=1).
func (p Point3[T]) Lerp(q Point3[T], alpha float64) Point3[T] {
	return Point3[T]{
		X: fromFloat[T](lerpScalar(p.X, q.X, alpha)),
		Y: fromFloat[T](lerpScalar(p.Y, q.Y, alpha)),
		Z: fromFloat[T](lerpScalar(p.Z, q.Z, alpha)),
	}
}

// Lineal returns the linear combination alpha*p + beta*q.
func (p Point3[T]) Lineal(q Point3[T], alpha, beta float64) Point3[T] {
	return Point3[T]{
		X: fromFloat[T](alpha*float64(p.X) + beta*float64(q.X)),
		Y: fromFloat[T](alpha*float64(p.Y) + beta*float64(q.Y)),
		Z: fromFloat[T](alpha*float64(p.Z) + beta*float64(q.Z)),
	}
}

// DistanceSq returns the squared distance between two points.
func (p Point3[T]) DistanceSq(q Point3[T]) float64 {
	return mathutil.DistanceSq3(float64(p.X), float64(p.Y), float64(p.Z), float64(q.X), float64(q.Y), float64(q.Z))
}

// Distance returns the distance between two points.
func (p Point3[T]) Distance(q Point3[T]) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// ToVector returns the displacement from the origin to p.
func (p Point3[T]) ToVector() Vector3[T] {
	return Vector3[T]{X: p.X, Y: p.Y, Z: p.Z}
}

// IsOrigin reports whether every component is zero.
func (p Point3[T]) IsOrigin() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

func point3From[T Scalar](c Components) Point3[T] {
	return Point3[T]{X: T(c.V[0]), Y: T(c.V[1]), Z: T(c.V[2])}
}

func (p Point3[T]) Shape() Shape { return shapeOf[T](3, RolePoint) }

func (p Point3[T]) Len() int { return 3 }

func (p Point3[T]) Index(i int) (float64, error) { return p.Components().Index(i) }

// Components returns the plain data of p.
func (p Point3[T]) Components() Components {
	return components3(p.Shape(), p.X, p.Y, p.Z)
}

// XYZ returns the components.
func (p Point3[T]) XYZ() (T, T, T) { return p.X, p.Y, p.Z }

// Equal reports whether other has the same shape and component values.
func (p Point3[T]) Equal(other Tuple) bool { return equalComponents(p.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of p,
// is within eps of p in every component.
func (p Point3[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(p.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (p Point3[T]) Hash() uint64 { return hashComponents(p.Components()) }

func (p Point3[T]) String() string {
	return formatComponents(p.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (p Point3[T]) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Point3[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, p.Shape())
	if err != nil {
		return err
	}
	*p = point3From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p Point3[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, p.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Point3[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, p.Shape())
	if err != nil {
		return err
	}
	*p = point3From[T](c)
	return nil
}
