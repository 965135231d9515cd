package curve

import (
	"math"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// Arc2 is the part of a circle swept counter-clockwise from angle Start by
// Sweep radians.
//
// Arcs built by NewArc2 are canonical: Start is in [0, 2π) and Sweep is in
// (0, 2π].
type Arc2 struct {
	Circle2
	Start float64
	Sweep float64
}

// NewArc2 creates an arc of c. A negative sweep runs clockwise and is
// rewritten to the equivalent counter-clockwise arc; sweeps beyond a full
// turn are clamped to one. A zero or non-finite sweep is a
// *essence.DegenerateInputError.
func NewArc2(c Circle2, start, sweep float64) (Arc2, error) {
	if err := c.Validate(); err != nil {
		return Arc2{}, err
	}
	if !mathutil.IsFinite(start) || !mathutil.IsFinite(sweep) {
		return Arc2{}, essence.Degenerate("curve.NewArc2", "non-finite angle")
	}
	if sweep == 0 {
		return Arc2{}, essence.Degenerate("curve.NewArc2", "zero sweep")
	}
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	return Arc2{
		Circle2: c,
		Start:   mathutil.NormalizeAngle(start),
		Sweep:   math.Min(sweep, mathutil.TwoPi),
	}, nil
}

// Validate reports whether a is a canonical arc of a valid circle.
func (a Arc2) Validate() error {
	if err := a.Circle2.Validate(); err != nil {
		return err
	}
	if !(a.Start >= 0 && a.Start < mathutil.TwoPi) || !(a.Sweep > 0 && a.Sweep <= mathutil.TwoPi) {
		return essence.Degenerate("curve.Arc2", "angles are not canonical")
	}
	return nil
}

// EndAngle returns the angle where the arc stops, in [0, 2π).
func (a Arc2) EndAngle() float64 {
	return mathutil.NormalizeAngle(a.Start + a.Sweep)
}

// StartPoint returns the point at angle Start.
func (a Arc2) StartPoint() essence.Point2d {
	return a.Circle2.Eval(a.Start)
}

// EndPoint returns the point at angle Start+Sweep.
func (a Arc2) EndPoint() essence.Point2d {
	return a.Circle2.Eval(a.Start + a.Sweep)
}

// Eval returns the point t radians past Start. t is not clamped.
func (a Arc2) Eval(t float64) essence.Point2d {
	return a.Circle2.Eval(a.Start + t)
}

// ContainsAngle reports whether theta lies in the half-open span
// [Start, Start+Sweep), allowing eps before Start. Spans crossing the 0/2π
// wrap are handled.
func (a Arc2) ContainsAngle(theta, eps float64) bool {
	return mathutil.AngleInSpan(theta, a.Start, a.Sweep, eps)
}

// Length returns the arc length r*Sweep.
func (a Arc2) Length() float64 {
	return a.Radius * a.Sweep
}

// BoundingBox returns the axis-aligned bounding box of the arc: its
// endpoints plus every axis extreme of the circle inside the span.
func (a Arc2) BoundingBox() essence.BoundingBox2d {
	box := essence.Box2FromPoints(a.StartPoint(), a.EndPoint())
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if a.ContainsAngle(theta, 0) {
			box = box.Extend(a.Circle2.Eval(theta))
		}
	}
	return box
}
