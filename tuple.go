package essence

import "github.com/gogpu/essence/mathutil"

// Tuple is implemented by every tuple, point, vector and color type.
//
// It is the kind-agnostic view of a value: the shape, a generic indexer and
// the extracted components. Kind-specific access goes through the
// capability interfaces below or the concrete types themselves.
type Tuple interface {
	// Shape describes the dimension, role and numeric kind.
	Shape() Shape
	// Len returns the number of components.
	Len() int
	// Index returns component i as float64. It fails with *IndexError
	// outside [0, Len).
	Index(i int) (float64, error)
	// Components returns the plain data of the value.
	Components() Components
}

// Vector is implemented by the vector types.
type Vector interface {
	Tuple
	isVector()
}

// Point is implemented by the point types.
type Point interface {
	Tuple
	isPoint()
}

// Color is implemented by the color types.
type Color interface {
	Tuple
	isColor()
}

// Tuple2Of is any two-component value of kind T.
type Tuple2Of[T Scalar] interface {
	Tuple
	XY() (T, T)
}

// Tuple3Of is any three-component value of kind T.
type Tuple3Of[T Scalar] interface {
	Tuple
	XYZ() (T, T, T)
}

// Tuple4Of is any four-component value of kind T.
type Tuple4Of[T Scalar] interface {
	Tuple
	XYZW() (T, T, T, T)
}

// Vector2Of is a two-component vector of kind T.
type Vector2Of[T Scalar] interface {
	Vector
	XY() (T, T)
}

// Vector3Of is a three-component vector of kind T.
type Vector3Of[T Scalar] interface {
	Vector
	XYZ() (T, T, T)
}

// Vector4Of is a four-component vector of kind T.
type Vector4Of[T Scalar] interface {
	Vector
	XYZW() (T, T, T, T)
}

// Point2Of is a two-component point of kind T.
type Point2Of[T Scalar] interface {
	Point
	XY() (T, T)
}

// Point3Of is a three-component point of kind T.
type Point3Of[T Scalar] interface {
	Point
	XYZ() (T, T, T)
}

// Point4Of is a four-component point of kind T.
type Point4Of[T Scalar] interface {
	Point
	XYZW() (T, T, T, T)
}

// Color3Of is an RGB color with channel kind T.
type Color3Of[T Channel] interface {
	Color
	RGBValues() (T, T, T)
}

// Color4Of is an RGBA color with channel kind T.
type Color4Of[T Channel] interface {
	Color
	RGBAValues() (T, T, T, T)
}

// Components is the plain data extracted from a tuple: its shape and up to
// four component values widened to float64. float32, int32 and uint8 values
// are represented exactly.
type Components struct {
	Shape Shape
	V     [4]float64
}

// Slice returns the used components.
func (c Components) Slice() []float64 {
	return c.V[:c.Shape.Dim]
}

// Index returns component i or an *IndexError.
func (c Components) Index(i int) (float64, error) {
	if i < 0 || i >= c.Shape.Dim {
		return 0, &IndexError{Index: i, Len: c.Shape.Dim}
	}
	return c.V[i], nil
}

// To converts the components to the dst shape.
//
// The leading dst.Dim components are kept; asking for more components than
// the source has is a *ConversionError. When either side is a color and the
// conversion crosses between uint8 and a floating kind, channels are
// rescaled by 255 (rounded to nearest on the way to uint8). Every other
// kind change is a direct cast: float32 rounding, integer truncation toward
// zero with saturation at the kind's range. NaN cannot be cast to an integer
// kind.
func (c Components) To(dst Shape) (Components, error) {
	src := c.Shape
	if !dst.Valid() {
		return Components{}, &ConversionError{From: src, To: dst, Reason: "no such type"}
	}
	if dst.Dim > src.Dim {
		return Components{}, &ConversionError{From: src, To: dst, Reason: "source has fewer components"}
	}

	out := Components{Shape: dst}
	scale := colorScale(src, dst)
	for i := 0; i < dst.Dim; i++ {
		v := c.V[i]
		switch scale {
		case scaleToUnit:
			v /= 255
		case scaleToByte:
			v = mathutil.Clamp01(v)*255 + 0.5
		}
		cast, ok := castTo(dst.Kind, v)
		if !ok {
			return Components{}, &ConversionError{From: src, To: dst, Reason: "NaN component"}
		}
		out.V[i] = cast
	}
	return out, nil
}

type channelScale uint8

const (
	scaleNone channelScale = iota
	scaleToUnit
	scaleToByte
)

func colorScale(src, dst Shape) channelScale {
	if src.Role != RoleColor && dst.Role != RoleColor {
		return scaleNone
	}
	switch {
	case src.Kind == KindUint8 && dst.Kind.IsFloat():
		return scaleToUnit
	case src.Kind.IsFloat() && dst.Kind == KindUint8:
		return scaleToByte
	default:
		return scaleNone
	}
}

// epsilonEquals compares c with other after converting other into c's shape.
// Values that cannot be converted are unequal.
func epsilonEquals(c Components, other Tuple, eps float64) bool {
	if other == nil {
		return false
	}
	oc, err := other.Components().To(c.Shape)
	if err != nil {
		return false
	}
	for i := 0; i < c.Shape.Dim; i++ {
		if !mathutil.EpsilonEquals(c.V[i], oc.V[i], eps) {
			return false
		}
	}
	return true
}

func components2[T Scalar](s Shape, x, y T) Components {
	return Components{Shape: s, V: [4]float64{float64(x), float64(y)}}
}

func components3[T Scalar](s Shape, x, y, z T) Components {
	return Components{Shape: s, V: [4]float64{float64(x), float64(y), float64(z)}}
}

func components4[T Scalar](s Shape, x, y, z, w T) Components {
	return Components{Shape: s, V: [4]float64{float64(x), float64(y), float64(z), float64(w)}}
}

func shapeOf[T Scalar](dim int, role Role) Shape {
	return Shape{Dim: dim, Role: role, Kind: KindOf[T]()}
}

// equalComponents reports whether other has exactly the shape and values of c.
func equalComponents(c Components, other Tuple) bool {
	if other == nil || other.Shape() != c.Shape {
		return false
	}
	return other.Components().V == c.V
}

func lerpScalar[T Scalar](a, b T, t float64) float64 {
	return mathutil.Lerp(float64(a), float64(b), t)
}
