package essence

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Interop with the vector types of golang.org/x/image and gonum. These
// conversions widen to float64 or narrow to float32 without the conversion
// engine since the target layout is fixed.

// F64 returns the vector as an x/image f64.Vec2.
func (v Vector2[T]) F64() f64.Vec2 { return f64.Vec2{float64(v.X), float64(v.Y)} }

// F32 returns the vector as an x/image f32.Vec2.
func (v Vector2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// R2 returns the vector as a gonum r2.Vec.
func (v Vector2[T]) R2() r2.Vec { return r2.Vec{X: float64(v.X), Y: float64(v.Y)} }

func (v Vector3[T]) F64() f64.Vec3 { return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }

func (v Vector3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

// R3 returns the vector as a gonum r3.Vec.
func (v Vector3[T]) R3() r3.Vec { return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)} }

func (v Vector4[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func (v Vector4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// F64 returns the point as an x/image f64.Vec2.
func (p Point2[T]) F64() f64.Vec2 { return f64.Vec2{float64(p.X), float64(p.Y)} }

// R2 returns the point as a gonum r2.Vec.
func (p Point2[T]) R2() r2.Vec { return r2.Vec{X: float64(p.X), Y: float64(p.Y)} }

// Fixed returns the point in 26.6 fixed point, rounding to the nearest
// 1/64 and saturating at the range of fixed.Int26_6.
func (p Point2[T]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(float64(p.X)), Y: toFixed(float64(p.Y))}
}

// Image returns the point as an image.Point, truncating toward zero.
func (p Point2[T]) Image() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

func (p Point3[T]) F64() f64.Vec3 { return f64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)} }

// R3 returns the point as a gonum r3.Vec.
func (p Point3[T]) R3() r3.Vec { return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)} }

// Vector2FromF64 converts an x/image vector.
func Vector2FromF64(v f64.Vec2) Vector2d { return Vector2d{X: v[0], Y: v[1]} }

// Vector2FromR2 converts a gonum vector.
func Vector2FromR2(v r2.Vec) Vector2d { return Vector2d{X: v.X, Y: v.Y} }

// Vector3FromR3 converts a gonum vector.
func Vector3FromR3(v r3.Vec) Vector3d { return Vector3d{X: v.X, Y: v.Y, Z: v.Z} }

// Point2FromR2 converts a gonum vector to a position.
func Point2FromR2(v r2.Vec) Point2d { return Point2d{X: v.X, Y: v.Y} }

// Point3FromR3 converts a gonum vector to a position.
func Point3FromR3(v r3.Vec) Point3d { return Point3d{X: v.X, Y: v.Y, Z: v.Z} }

// Point2FromFixed converts a 26.6 fixed point position.
func Point2FromFixed(p fixed.Point26_6) Point2d {
	return Point2d{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Point2FromImage converts an image.Point.
func Point2FromImage(p image.Point) Point2i {
	return Point2i{X: int32(p.X), Y: int32(p.Y)}
}

func toFixed(v float64) fixed.Int26_6 {
	v = math.Round(v * 64)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(v)
}
