package surface

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// Plane3 is the plane Origin + u*U + v*V. U and V need not be orthogonal
// or unit length, only non-parallel.
type Plane3 struct {
	Origin essence.Point3d
	U, V   essence.Vector3d
}

// NewPlane3 creates a plane. Parallel or zero axes are a
// *essence.DegenerateInputError.
func NewPlane3(origin essence.Point3d, u, v essence.Vector3d) (Plane3, error) {
	p := Plane3{Origin: origin, U: u, V: v}
	if err := p.Validate(); err != nil {
		return Plane3{}, err
	}
	return p, nil
}

// PlaneThrough returns the plane through a, b and c with axes b-a and c-a,
// so a, b and c sit at parameters (0, 0), (1, 0) and (0, 1).
func PlaneThrough(a, b, c essence.Point3d) (Plane3, error) {
	return NewPlane3(a, b.Sub(a), c.Sub(a))
}

// Validate reports whether the axes of p span a plane.
func (p Plane3) Validate() error {
	u, v := p.U.R3(), p.V.R3()
	cross := r3.Norm(r3.Cross(u, v))
	if !(cross > mathutil.EpsilonFloat64*r3.Norm(u)*r3.Norm(v)) || !mathutil.IsFinite(cross) {
		return essence.Degenerate("surface.Plane3", "axes are parallel or zero")
	}
	return nil
}

// Evaluate returns the point at parameters (u, v).
func (p Plane3) Evaluate(u, v float64) essence.Point3d {
	return p.Origin.Add(p.U.Scale(u)).Add(p.V.Scale(v))
}

// Project returns the parameters of the point of p closest to q.
func (p Plane3) Project(q essence.Point3d) (u, v float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	a := mat.NewDense(3, 2, []float64{
		p.U.X, p.V.X,
		p.U.Y, p.V.Y,
		p.U.Z, p.V.Z,
	})
	d := q.Sub(p.Origin)
	b := mat.NewVecDense(3, []float64{d.X, d.Y, d.Z})

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, b); err != nil {
		return 0, 0, essence.Degenerate("surface.Plane3.Project", err.Error())
	}
	return x.AtVec(0), x.AtVec(1), nil
}

// Normal returns the unit normal U×V.
func (p Plane3) Normal() essence.Vector3d {
	return essence.Vector3FromR3(r3.Unit(r3.Cross(p.U.R3(), p.V.R3())))
}

// SignedDistance returns the distance from q to p, positive on the side
// Normal points to.
func (p Plane3) SignedDistance(q essence.Point3d) float64 {
	n := r3.Unit(r3.Cross(p.U.R3(), p.V.R3()))
	return r3.Dot(r3.Sub(q.R3(), p.Origin.R3()), n)
}

// Area returns the area of the parallelogram spanned by U and V.
func (p Plane3) Area() float64 {
	return r3.Norm(r3.Cross(p.U.R3(), p.V.R3()))
}
