package curve

import (
	"math"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// Circle2 is the circle of Radius around Center. Angles are measured
// counter-clockwise from the positive X axis.
type Circle2 struct {
	Center essence.Point2d
	Radius float64
}

// NewCircle2 creates a circle. A negative or non-finite radius is a
// *essence.DegenerateInputError; a zero radius is allowed.
func NewCircle2(center essence.Point2d, radius float64) (Circle2, error) {
	c := Circle2{Center: center, Radius: radius}
	if err := c.Validate(); err != nil {
		return Circle2{}, err
	}
	return c, nil
}

// CircleThrough returns the circle through three points. Collinear or
// coincident points are a *essence.DegenerateInputError.
func CircleThrough(a, b, c essence.Point2d) (Circle2, error) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if math.Abs(d) <= mathutil.EpsilonFloat64*ab.Length()*ac.Length() {
		return Circle2{}, essence.Degenerate("curve.CircleThrough", "collinear points")
	}

	// Circumcenter relative to a.
	abSq, acSq := ab.LengthSq(), ac.LengthSq()
	ux := (ac.Y*abSq - ab.Y*acSq) / d
	uy := (ab.X*acSq - ac.X*abSq) / d
	return NewCircle2(a.Add(essence.V2(ux, uy)), math.Hypot(ux, uy))
}

// Validate reports whether c has a finite center and a finite non-negative
// radius.
func (c Circle2) Validate() error {
	if !finitePoint(c.Center) {
		return essence.Degenerate("curve.Circle2", "non-finite center")
	}
	if !(c.Radius >= 0) || math.IsInf(c.Radius, 1) {
		return essence.Degenerate("curve.Circle2", "radius is negative or not finite")
	}
	return nil
}

// Eval returns the point at angle theta.
func (c Circle2) Eval(theta float64) essence.Point2d {
	sin, cos := math.Sincos(theta)
	return essence.P2(c.Center.X+c.Radius*cos, c.Center.Y+c.Radius*sin)
}

// AngleOf returns the angle in [0, 2π) of p as seen from the center.
// The center itself has angle 0.
func (c Circle2) AngleOf(p essence.Point2d) float64 {
	return mathutil.NormalizeAngle(p.Sub(c.Center).Angle())
}

// Circumference returns 2πr.
func (c Circle2) Circumference() float64 {
	return mathutil.TwoPi * c.Radius
}

// Area returns πr².
func (c Circle2) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// BoundingBox returns the axis-aligned bounding box of c.
func (c Circle2) BoundingBox() essence.BoundingBox2d {
	r := essence.V2(c.Radius, c.Radius)
	return essence.NewBox2(c.Center.SubVector(r), c.Center.Add(r))
}
