// Package distance answers closest-point queries from a point to the curve
// primitives and to bounding boxes.
//
// Queries return squared distances; call Result.Distance for the linear
// distance.
package distance

import (
	"math"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/curve"
	"github.com/gogpu/essence/mathutil"
)

// Result is the answer to a closest-point query.
//
// Param locates Closest on the primitive: the arc-length parameter for
// lines and segments, the angle in [0, 2π) for circles, and the angle past
// the arc's start for arcs. It is 0 for boxes.
type Result struct {
	DistanceSq float64
	Closest    essence.Point2d
	Param      float64
}

// Distance returns the linear distance.
func (r Result) Distance() float64 {
	return math.Sqrt(r.DistanceSq)
}

// PointLine returns the distance from p to the infinite line l.
func PointLine(p essence.Point2d, l curve.Line2) (Result, error) {
	if err := l.Validate(); err != nil {
		return Result{}, err
	}
	t := l.Project(p)
	sd := l.SignedDistance(p)
	return Result{DistanceSq: sd * sd, Closest: l.Eval(t), Param: t}, nil
}

// PointSegment returns the distance from p to s. The projection of p onto
// the supporting line is clamped to the segment, and no square root is
// taken.
func PointSegment(p essence.Point2d, s curve.Segment2) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	t := s.Project(p)
	closest := s.Eval(t)
	return Result{DistanceSq: p.DistanceSq(closest), Closest: closest, Param: t}, nil
}

// PointCircle returns the distance from p to the circle c.
//
// With solid set, c is a filled disk and a point strictly inside it is at
// distance 0 from itself. Otherwise the closest point lies on the circle
// along the ray from the center through p. A p within eps of the center
// has no reliable ray; it snaps to the angle-0 point and the distance is
// measured to that point, which is Radius exactly at the center.
func PointCircle(p essence.Point2d, c curve.Circle2, solid bool, eps float64) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	v := p.Sub(c.Center)
	d := v.Length()
	if solid && d < c.Radius {
		return Result{DistanceSq: 0, Closest: p, Param: c.AngleOf(p)}, nil
	}
	if d <= eps {
		closest := c.Eval(0)
		return Result{DistanceSq: p.DistanceSq(closest), Closest: closest, Param: 0}, nil
	}
	gap := d - c.Radius
	return Result{
		DistanceSq: gap * gap,
		Closest:    c.Center.Add(v.Scale(c.Radius / d)),
		Param:      c.AngleOf(p),
	}, nil
}

// PointArc returns the distance from p to the arc a.
//
// The full-circle answer is kept when its angle falls in the arc's
// half-open span (widened by eps before the start). Otherwise the nearer
// endpoint wins; on a tie the start point is returned.
func PointArc(p essence.Point2d, a curve.Arc2, eps float64) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	full, err := PointCircle(p, a.Circle2, false, eps)
	if err != nil {
		return Result{}, err
	}
	if a.ContainsAngle(full.Param, eps) {
		off := mathutil.NormalizeAngle(full.Param - a.Start)
		if off > a.Sweep {
			// Accepted by the eps margin before the start.
			off = 0
		}
		full.Param = off
		return full, nil
	}

	start, end := a.StartPoint(), a.EndPoint()
	ds, de := p.DistanceSq(start), p.DistanceSq(end)
	if de < ds {
		return Result{DistanceSq: de, Closest: end, Param: a.Sweep}, nil
	}
	return Result{DistanceSq: ds, Closest: start, Param: 0}, nil
}

// PointBox returns the distance from p to the box b, zero when b contains
// p. The empty box has no points and is a *essence.DegenerateInputError.
func PointBox(p essence.Point2d, b essence.BoundingBox2d) (Result, error) {
	if b.IsEmpty() {
		return Result{}, essence.Degenerate("distance.PointBox", "empty box")
	}
	closest := essence.P2(
		math.Max(b.Min.X, math.Min(p.X, b.Max.X)),
		math.Max(b.Min.Y, math.Min(p.Y, b.Max.Y)),
	)
	return Result{DistanceSq: p.DistanceSq(closest), Closest: closest}, nil
}
