package essence

import (
	"math"

	"github.com/gogpu/essence/mathutil"
	"github.com/vmihailenco/msgpack/v5"
)

// Point2 represents a 2D position.
// Points combine with vectors: point+vector is a point, point-point is a
// vector. Adding two points has no meaning and is not offered.
type Point2[T Scalar] struct {
	X, Y T
}

// Point2 aliases by kind.
type (
	Point2d = Point2[float64]
	Point2f = Point2[float32]
	Point2i = Point2[int32]
	Point2b = Point2[uint8]
)

// P2 is a convenience function to create a Point2.
func P2[T Scalar](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

func (p Point2[T]) isPoint() {}

// Add returns the point displaced by v.
func (p Point2[T]) Add(v Vector2[T]) Point2[T] {
	return Point2[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point2[T]) Sub(q Point2[T]) Vector2[T] {
	return Vector2[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubVector returns the point displaced by -v.
func (p Point2[T]) SubVector(v Vector2[T]) Point2[T] {
	return Point2[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// Lerp interpolates from p (alpha=0) to q (alpha=1).
func (p Point2[T]) Lerp(q Point2[T], alpha float64) Point2[T] {
	return Point2[T]{
		X: fromFloat[T](lerpScalar(p.X, q.X, alpha)),
		Y: fromFloat[T](lerpScalar(p.Y, q.Y, alpha)),
	}
}

// Lineal returns the linear combination alpha*p + beta*q.
func (p Point2[T]) Lineal(q Point2[T], alpha, beta float64) Point2[T] {
	return Point2[T]{
		X: fromFloat[T](alpha*float64(p.X) + beta*float64(q.X)),
		Y: fromFloat[T](alpha*float64(p.Y) + beta*float64(q.Y)),
	}
}

// DistanceSq returns the squared distance between two points.
func (p Point2[T]) DistanceSq(q Point2[T]) float64 {
	return mathutil.DistanceSq2(float64(p.X), float64(p.Y), float64(q.X), float64(q.Y))
}

// Distance returns the distance between two points.
func (p Point2[T]) Distance(q Point2[T]) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// ToVector returns the displacement from the origin to p.
func (p Point2[T]) ToVector() Vector2[T] {
	return Vector2[T]{X: p.X, Y: p.Y}
}

// IsOrigin reports whether every component is zero.
func (p Point2[T]) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

func point2From[T Scalar](c Components) Point2[T] {
	return Point2[T]{X: T(c.V[0]), Y: T(c.V[1])}
}

// Shape returns the point shape of dimension 2 and kind T.
func (p Point2[T]) Shape() Shape { return shapeOf[T](2, RolePoint) }

// Len returns 2.
func (p Point2[T]) Len() int { return 2 }

// Index returns component i as float64.
func (p Point2[T]) Index(i int) (float64, error) { return p.Components().Index(i) }

// Components returns the plain data of p.
func (p Point2[T]) Components() Components {
	return components2(p.Shape(), p.X, p.Y)
}

// XY returns the components.
func (p Point2[T]) XY() (T, T) { return p.X, p.Y }

// Equal reports whether other has the same shape and component values.
func (p Point2[T]) Equal(other Tuple) bool { return equalComponents(p.Components(), other) }

// EpsilonEquals reports whether other, converted to the shape of p,
// is within eps of p in every component.
func (p Point2[T]) EpsilonEquals(other Tuple, eps float64) bool {
	return epsilonEquals(p.Components(), other, eps)
}

// Hash returns a deterministic hash of the shape and components.
func (p Point2[T]) Hash() uint64 { return hashComponents(p.Components()) }

func (p Point2[T]) String() string {
	return formatComponents(p.Components(), defaultFormatOptions())
}

// MarshalText implements encoding.TextMarshaler with the invariant format.
func (p Point2[T]) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Point2[T]) UnmarshalText(text []byte) error {
	c, err := unmarshalText(text, p.Shape())
	if err != nil {
		return err
	}
	*p = point2From[T](c)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p Point2[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeComponents(enc, p.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Point2[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := decodeComponents(dec, p.Shape())
	if err != nil {
		return err
	}
	*p = point2From[T](c)
	return nil
}
