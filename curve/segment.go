package curve

import (
	"github.com/gogpu/essence"
	"github.com/gogpu/essence/mathutil"
)

// Segment2 is the part of a line between parameters 0 and Length.
//
// Direction is unit length, so parameters are arc lengths measured from
// Origin.
type Segment2 struct {
	Origin    essence.Point2d
	Direction essence.Vector2d
	Length    float64
}

// NewSegment2 creates the segment from p0 to p1. Coincident endpoints are a
// *essence.DegenerateInputError.
func NewSegment2(p0, p1 essence.Point2d) (Segment2, error) {
	if !finitePoint(p0) || !finitePoint(p1) {
		return Segment2{}, essence.Degenerate("curve.NewSegment2", "non-finite endpoint")
	}
	d := p1.Sub(p0)
	length := d.Length()
	if length == 0 {
		return Segment2{}, essence.Degenerate("curve.NewSegment2", "coincident endpoints")
	}
	if !mathutil.IsFinite(length) {
		return Segment2{}, essence.Degenerate("curve.NewSegment2", "length overflows")
	}
	return Segment2{Origin: p0, Direction: d.Scale(1 / length), Length: length}, nil
}

// SegmentFrom creates a segment from any two tuples with at least two
// components, converting them to Point2d first.
func SegmentFrom(a, b essence.Tuple) (Segment2, error) {
	p0, err := essence.Convert[essence.Point2d](a)
	if err != nil {
		return Segment2{}, err
	}
	p1, err := essence.Convert[essence.Point2d](b)
	if err != nil {
		return Segment2{}, err
	}
	return NewSegment2(p0, p1)
}

// Validate reports whether s has a unit direction and a positive finite
// length.
func (s Segment2) Validate() error {
	if !finitePoint(s.Origin) || !isUnit(s.Direction) {
		return essence.Degenerate("curve.Segment2", "direction is not a unit vector")
	}
	if !(s.Length > 0) || !mathutil.IsFinite(s.Length) {
		return essence.Degenerate("curve.Segment2", "length is not positive")
	}
	return nil
}

// Start returns the point at parameter 0.
func (s Segment2) Start() essence.Point2d {
	return s.Origin
}

// End returns the point at parameter Length.
func (s Segment2) End() essence.Point2d {
	return s.Eval(s.Length)
}

// Eval returns the point at arc length t from Start. t is not clamped.
func (s Segment2) Eval(t float64) essence.Point2d {
	return s.Origin.Add(s.Direction.Scale(t))
}

// Project returns the parameter in [0, Length] of the point on s closest
// to p.
func (s Segment2) Project(p essence.Point2d) float64 {
	t := p.Sub(s.Origin).Dot(s.Direction)
	if t <= 0 {
		return 0
	}
	if t >= s.Length {
		return s.Length
	}
	return t
}

// Line returns the supporting line of s.
func (s Segment2) Line() Line2 {
	return Line2{Origin: s.Origin, Direction: s.Direction}
}

// Midpoint returns the point halfway between Start and End.
func (s Segment2) Midpoint() essence.Point2d {
	return s.Eval(s.Length / 2)
}

// Reversed returns the segment from End to Start.
func (s Segment2) Reversed() Segment2 {
	return Segment2{Origin: s.End(), Direction: s.Direction.Neg(), Length: s.Length}
}

// Subsegment returns the part of s between parameters t0 and t1. The
// result runs from Eval(t0) to Eval(t1), so t0 > t1 reverses it.
func (s Segment2) Subsegment(t0, t1 float64) (Segment2, error) {
	return NewSegment2(s.Eval(t0), s.Eval(t1))
}

// BoundingBox returns the axis-aligned bounding box of s.
func (s Segment2) BoundingBox() essence.BoundingBox2d {
	return essence.NewBox2(s.Start(), s.End())
}
