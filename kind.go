package essence

import (
	"fmt"
	"math"

	"github.com/gogpu/essence/mathutil"
)

// Kind identifies the numeric type stored in a tuple.
type Kind uint8

const (
	// KindFloat64 stores float64 components.
	KindFloat64 Kind = iota
	// KindFloat32 stores float32 components.
	KindFloat32
	// KindInt32 stores int32 components.
	KindInt32
	// KindUint8 stores uint8 components (color channels, byte tuples).
	KindUint8
)

// String returns the Go type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindFloat32:
		return "float32"
	case KindInt32:
		return "int32"
	case KindUint8:
		return "uint8"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Suffix returns the one-letter suffix used by the type aliases
// (Vector2d, Vector2f, Vector2i, Vector2b).
func (k Kind) Suffix() string {
	switch k {
	case KindFloat64:
		return "d"
	case KindFloat32:
		return "f"
	case KindInt32:
		return "i"
	case KindUint8:
		return "b"
	default:
		return "?"
	}
}

// IsFloat reports whether the kind is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat64 || k == KindFloat32
}

// Epsilon returns the default comparison tolerance for the kind.
// Integer kinds compare exactly.
func (k Kind) Epsilon() float64 {
	switch k {
	case KindFloat64:
		return mathutil.EpsilonFloat64
	case KindFloat32:
		return mathutil.EpsilonFloat32
	default:
		return 0
	}
}

// Range returns the lowest and highest finite values representable by the
// kind. These double as the "unbounded" sentinels of bounding boxes.
func (k Kind) Range() (lowest, highest float64) {
	switch k {
	case KindFloat32:
		return -math.MaxFloat32, math.MaxFloat32
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	case KindUint8:
		return 0, math.MaxUint8
	default:
		return -math.MaxFloat64, math.MaxFloat64
	}
}

// Role is the semantic role of a tuple.
type Role uint8

const (
	// RoleTuple is a plain component aggregate without geometric meaning.
	RoleTuple Role = iota
	// RolePoint is a position.
	RolePoint
	// RoleVector is a free displacement.
	RoleVector
	// RoleColor is an RGB or RGBA color.
	RoleColor
)

// String returns the type name prefix for the role.
func (r Role) String() string {
	switch r {
	case RoleTuple:
		return "Tuple"
	case RolePoint:
		return "Point"
	case RoleVector:
		return "Vector"
	case RoleColor:
		return "Color"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

// Shape describes a tuple type: its dimension, role and numeric kind.
// Shapes are comparable and key the conversion registry.
type Shape struct {
	Dim  int
	Role Role
	Kind Kind
}

// String returns the alias name of the shape, for example "Vector3f".
func (s Shape) String() string {
	return fmt.Sprintf("%s%d%s", s.Role, s.Dim, s.Kind.Suffix())
}

// Valid reports whether the shape names a concrete type of this package.
func (s Shape) Valid() bool {
	if s.Kind > KindUint8 {
		return false
	}
	if s.Role == RoleColor {
		return (s.Dim == 3 || s.Dim == 4) && (s.Kind == KindFloat32 || s.Kind == KindUint8)
	}
	return s.Role <= RoleVector && s.Dim >= 2 && s.Dim <= 4
}

// Scalar is the set of component types of tuples, points and vectors.
type Scalar interface {
	float64 | float32 | int32 | uint8
}

// Channel is the set of component types of colors.
type Channel interface {
	float32 | uint8
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return KindFloat32
	case int32:
		return KindInt32
	case uint8:
		return KindUint8
	default:
		return KindFloat64
	}
}

// castTo rounds or truncates v into the representable set of kind k, with
// saturation at the kind's range. NaN is reported through ok=false for the
// integer kinds.
func castTo(k Kind, v float64) (out float64, ok bool) {
	switch k {
	case KindFloat64:
		return v, true
	case KindFloat32:
		return float64(float32(v)), true
	}
	if math.IsNaN(v) {
		return 0, false
	}
	lo, hi := k.Range()
	v = math.Trunc(v)
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, true
}

// fromFloat converts v to T with truncation toward zero and saturation for
// the integer kinds. NaN maps to zero for integer kinds.
func fromFloat[T Scalar](v float64) T {
	out, _ := castTo(KindOf[T](), v)
	return T(out)
}
