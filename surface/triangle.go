package surface

import (
	"github.com/gogpu/essence"
)

// Triangle3 is the triangle with corners A, B and C, parametrized as
// A + u*(B-A) + v*(C-A). Points of the triangle have u >= 0, v >= 0 and
// u+v <= 1.
type Triangle3 struct {
	A, B, C essence.Point3d
}

// NewTriangle3 creates a triangle. Collinear or coincident corners are a
// *essence.DegenerateInputError.
func NewTriangle3(a, b, c essence.Point3d) (Triangle3, error) {
	t := Triangle3{A: a, B: b, C: c}
	if err := t.Plane().Validate(); err != nil {
		return Triangle3{}, essence.Degenerate("surface.NewTriangle3", "collinear corners")
	}
	return t, nil
}

// Plane returns the plane the triangle parametrization extends to.
func (t Triangle3) Plane() Plane3 {
	return Plane3{Origin: t.A, U: t.B.Sub(t.A), V: t.C.Sub(t.A)}
}

// Evaluate returns the point at parameters (u, v).
func (t Triangle3) Evaluate(u, v float64) essence.Point3d {
	return t.Plane().Evaluate(u, v)
}

// Project returns the parameters of the orthogonal projection of q onto
// the triangle's plane. The result may lie outside the triangle; check it
// with Contains.
func (t Triangle3) Project(q essence.Point3d) (u, v float64, err error) {
	return t.Plane().Project(q)
}

// Contains reports whether (u, v) lies in the triangle, widened by eps.
func (t Triangle3) Contains(u, v, eps float64) bool {
	return u >= -eps && v >= -eps && u+v <= 1+eps
}

// Normal returns the unit normal (B-A)×(C-A).
func (t Triangle3) Normal() essence.Vector3d {
	return t.Plane().Normal()
}

// Area returns the triangle's area.
func (t Triangle3) Area() float64 {
	return t.Plane().Area() / 2
}
