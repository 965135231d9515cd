// Package affine provides 2D affine transforms over essence points, vectors
// and bounding boxes.
package affine

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// singularEpsilon is the determinant magnitude below which Invert refuses.
const singularEpsilon = 1e-10

// Transform is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The zero Transform maps everything to the origin; use Identity for the
// neutral element.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation.
func Translate(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling about the origin.
func Scale(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a counter-clockwise rotation about the origin (angle in
// radians).
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear transform.
func Shear(x, y float64) Transform {
	return Transform{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply returns m * other: other is applied first, then m.
func (m Transform) Multiply(other Transform) Transform {
	return Transform{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Then returns the transform that applies m first and next afterwards.
func (m Transform) Then(next Transform) Transform {
	return next.Multiply(m)
}

// Determinant returns the determinant of the linear part.
// Zero means the transform is not invertible; a negative value means it
// flips orientation.
func (m Transform) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform, or a *essence.DegenerateInputError
// when the transform is singular.
func (m Transform) Invert() (Transform, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon || !mathutil.IsFinite(det) {
		return Transform{}, essence.Degenerate("affine.Invert", "singular transform")
	}

	invDet := 1.0 / det
	return Transform{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity reports whether m is exactly the identity.
func (m Transform) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation reports whether the linear part of m is the identity.
func (m Transform) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsScaleOnly reports whether m has no rotation or shear, so it maps
// axis-aligned boxes to axis-aligned boxes corner for corner.
func (m Transform) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest factor by which m stretches any
// vector: the largest singular value of the linear part.
func (m Transform) MaxScaleFactor() float64 {
	if m.IsScaleOnly() {
		return math.Max(math.Abs(m.A), math.Abs(m.E))
	}
	// Eigenvalues of MᵀM = [p q; q r].
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	return math.Sqrt((sum + disc) / 2)
}

// ApproxEqual reports whether every coefficient of m is within eps of the
// corresponding coefficient of other.
func (m Transform) ApproxEqual(other Transform, eps float64) bool {
	a := [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
	b := [6]float64{other.A, other.B, other.C, other.D, other.E, other.F}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// TransformPoint applies m to p.
func (m Transform) TransformPoint(p essence.Point2d) essence.Point2d {
	return essence.P2(
		m.A*p.X+m.B*p.Y+m.C,
		m.D*p.X+m.E*p.Y+m.F,
	)
}

// TransformVector applies the linear part of m to v (no translation).
func (m Transform) TransformVector(v essence.Vector2d) essence.Vector2d {
	return essence.V2(
		m.A*v.X+m.B*v.Y,
		m.D*v.X+m.E*v.Y,
	)
}

// TransformBox returns the bounding box of b's four transformed corners.
// The empty box maps to itself.
func (m Transform) TransformBox(b essence.BoundingBox2d) essence.BoundingBox2d {
	if b.IsEmpty() {
		return b
	}
	if m.IsScaleOnly() {
		return essence.NewBox2(m.TransformPoint(b.Min), m.TransformPoint(b.Max))
	}
	return essence.Box2FromPoints(
		m.TransformPoint(b.Min),
		m.TransformPoint(essence.P2(b.Max.X, b.Min.Y)),
		m.TransformPoint(b.Max),
		m.TransformPoint(essence.P2(b.Min.X, b.Max.Y)),
	)
}

// Apply converts t to a Point2d through the conversion engine and
// transforms it. Any tuple with at least two components is accepted;
// t's role is ignored.
func (m Transform) Apply(t essence.Tuple) (essence.Point2d, error) {
	p, err := essence.Convert[essence.Point2d](t)
	if err != nil {
		return essence.Point2d{}, err
	}
	return m.TransformPoint(p), nil
}

// Aff3 returns m in the layout used by golang.org/x/image/draw.
func (m Transform) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// FromAff3 builds a Transform from an x/image affine matrix.
func FromAff3(a f64.Aff3) Transform {
	return Transform{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}
