// Package mathutil provides the scalar helpers shared by the essence
// packages: epsilon comparisons, clamping, angle normalization and a
// quadratic root solver.
//
// Geometric predicates in essence never use exact float equality. Every
// predicate takes an explicit tolerance; the named constants below are the
// defaults used by callers that do not have a better one.
package mathutil

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances.
const (
	// EpsilonFloat64 is the default tolerance for float64 geometry.
	EpsilonFloat64 = 1e-9

	// EpsilonFloat32 is the default tolerance for float32 geometry.
	EpsilonFloat32 = 1e-6

	// EpsilonAngle is the default tolerance for angle comparisons in radians.
	EpsilonAngle = 1e-12
)

// TwoPi is 2π.
const TwoPi = 2 * math.Pi

// ErrInvalidRange is returned by Clamp when the lower bound exceeds the
// upper bound.
var ErrInvalidRange = errors.New("mathutil: lower bound greater than upper bound")

// Number is the set of numeric types the generic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// EpsilonEquals reports whether |a-b| <= eps.
//
// Equal infinities compare equal; an infinity never equals a finite value or
// the opposite infinity, and NaN never equals anything. The subtraction is
// only performed when both operands are finite, so Inf-Inf never produces
// NaN.
func EpsilonEquals(a, b, eps float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return scalar.EqualWithinAbs(a, b, eps)
}

// EpsilonZero reports whether |a| <= eps.
func EpsilonZero(a, eps float64) bool {
	return EpsilonEquals(a, 0, eps)
}

// Clamp returns v bounded to [lo, hi].
// It returns ErrInvalidRange when lo > hi.
func Clamp[T constraints.Ordered](v, lo, hi T) (T, error) {
	if lo > hi {
		return v, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	if v < lo {
		return lo, nil
	}
	if v > hi {
		return hi, nil
	}
	return v, nil
}

// Clamp01 bounds v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 0 {
		return math.Min(v, 1)
	}
	return 0
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqr returns x*x.
func Sqr[T Number](x T) T { return x * x }

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistanceSq2 returns the squared distance between (x0, y0) and (x1, y1).
func DistanceSq2(x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	return dx*dx + dy*dy
}

// DistanceSq3 returns the squared distance between two 3D positions.
func DistanceSq3(x0, y0, z0, x1, y1, z1 float64) float64 {
	dx, dy, dz := x1-x0, y1-y0, z1-z0
	return dx*dx + dy*dy + dz*dz
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
