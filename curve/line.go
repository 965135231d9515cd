package curve

import (
	"math"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// unitTolerance bounds how far a direction's length may drift from 1
// before Validate rejects it.
const unitTolerance = 1e-6

// Line2 is an infinite line through Origin along the unit vector Direction.
// The point at parameter t is Origin + t*Direction.
type Line2 struct {
	Origin    essence.Point2d
	Direction essence.Vector2d
}

// NewLine2 creates a line through origin along dir. dir is normalized; a
// zero or non-finite direction is a *essence.DegenerateInputError.
func NewLine2(origin essence.Point2d, dir essence.Vector2d) (Line2, error) {
	if !finitePoint(origin) {
		return Line2{}, essence.Degenerate("curve.NewLine2", "non-finite origin")
	}
	u, err := dir.Unit()
	if err != nil {
		return Line2{}, essence.Degenerate("curve.NewLine2", "zero direction")
	}
	return Line2{Origin: origin, Direction: u}, nil
}

// LineThrough creates the line through a and b, directed from a to b.
func LineThrough(a, b essence.Point2d) (Line2, error) {
	if a == b {
		return Line2{}, essence.Degenerate("curve.LineThrough", "coincident points")
	}
	return NewLine2(a, b.Sub(a))
}

// Validate reports whether l has a finite origin and a unit direction.
func (l Line2) Validate() error {
	if !finitePoint(l.Origin) || !isUnit(l.Direction) {
		return essence.Degenerate("curve.Line2", "direction is not a unit vector")
	}
	return nil
}

// Eval returns the point at parameter t.
func (l Line2) Eval(t float64) essence.Point2d {
	return l.Origin.Add(l.Direction.Scale(t))
}

// Project returns the parameter of the point on l closest to p.
func (l Line2) Project(p essence.Point2d) float64 {
	return p.Sub(l.Origin).Dot(l.Direction)
}

// Normal returns the unit normal, Direction rotated a quarter turn
// counter-clockwise.
func (l Line2) Normal() essence.Vector2d {
	return l.Direction.Perp()
}

// SignedDistance returns the distance from p to l, positive on the side
// Normal points to.
func (l Line2) SignedDistance(p essence.Point2d) float64 {
	return l.Direction.Cross(p.Sub(l.Origin))
}

func finitePoint(p essence.Point2d) bool {
	return mathutil.IsFinite(p.X) && mathutil.IsFinite(p.Y)
}

func isUnit(v essence.Vector2d) bool {
	return math.Abs(v.Length()-1) <= unitTolerance
}
