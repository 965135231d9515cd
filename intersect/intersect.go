// Package intersect classifies the intersection of lines, segments and
// circles.
//
// Every function takes an explicit tolerance eps. Two directions count as
// parallel when the sine of the angle between them is at most eps, and a
// parameter within eps of a range bound counts as inside the range (and is
// clamped onto it). Results carry the parameters of each intersection point
// along both inputs: arc lengths for lines and segments, angles in [0, 2π)
// for circles.
package intersect

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/curve"
	"github.com/gogpu/essence/mathutil"
)

// Kind classifies an intersection.
type Kind uint8

const (
	// Empty means the inputs do not meet.
	Empty Kind = iota

	// Point means the inputs meet in isolated points, one Record each.
	Point

	// Line means two infinite lines coincide. The overlap is unbounded, so
	// the result has no records.
	Line

	// Segment means the inputs overlap along a stretch of positive length;
	// the two records bound it.
	Segment
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Point:
		return "Point"
	case Line:
		return "Line"
	case Segment:
		return "Segment"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Record is one intersection point with its parameter on each input.
type Record struct {
	Param0 float64
	Param1 float64
	Point  essence.Point2d
}

// Result is the outcome of an intersection query. Records are ordered by
// Param0.
type Result struct {
	Kind    Kind
	Records []Record
}

// First returns the first record, if any.
func (r Result) First() (Record, bool) {
	if len(r.Records) == 0 {
		return Record{}, false
	}
	return r.Records[0], true
}

var empty = Result{Kind: Empty}

func pointResult(records ...Record) Result {
	sort.Slice(records, func(i, j int) bool { return records[i].Param0 < records[j].Param0 })
	return Result{Kind: Point, Records: records}
}

// lineParams solves o0 + t0*d0 = o1 + t1*d1 by Cramer's rule. ok is false
// when the directions are parallel within eps; coincident then reports
// whether the lines are the same line.
func lineParams(l0, l1 curve.Line2, eps float64) (t0, t1 float64, ok, coincident bool) {
	diff := l1.Origin.Sub(l0.Origin)
	denom := l0.Direction.Cross(l1.Direction)
	if math.Abs(denom) > eps {
		return diff.Cross(l1.Direction) / denom, diff.Cross(l0.Direction) / denom, true, false
	}
	// Parallel: coincident when l1's origin lies on l0.
	return 0, 0, false, math.Abs(diff.Cross(l0.Direction)) <= eps
}

// clampRange reports whether t lies in [lo-eps, hi+eps] and clamps it onto
// [lo, hi].
func clampRange(t, lo, hi, eps float64) (float64, bool) {
	if t < lo-eps || t > hi+eps {
		return t, false
	}
	return math.Min(math.Max(t, lo), hi), true
}

// LineLine intersects two infinite lines.
//
// Crossing lines give Point; parallel lines give Empty, or Line with no
// records when they coincide.
func LineLine(l0, l1 curve.Line2, eps float64) (Result, error) {
	if err := validate(l0, l1); err != nil {
		return empty, err
	}
	t0, t1, ok, coincident := lineParams(l0, l1, eps)
	switch {
	case ok:
		return pointResult(Record{Param0: t0, Param1: t1, Point: l0.Eval(t0)}), nil
	case coincident:
		return Result{Kind: Line}, nil
	default:
		return empty, nil
	}
}

// LineSegment intersects an infinite line with a segment.
//
// A segment lying on the line gives Segment with records at the segment's
// endpoints.
func LineSegment(l curve.Line2, s curve.Segment2, eps float64) (Result, error) {
	if err := validate(l, s); err != nil {
		return empty, err
	}
	_, t1, ok, coincident := lineParams(l, s.Line(), eps)
	switch {
	case ok:
		t, in := clampRange(t1, 0, s.Length, eps)
		if !in {
			return empty, nil
		}
		p := s.Eval(t)
		return pointResult(Record{Param0: l.Project(p), Param1: t, Point: p}), nil
	case coincident:
		start, end := s.Start(), s.End()
		records := []Record{
			{Param0: l.Project(start), Param1: 0, Point: start},
			{Param0: l.Project(end), Param1: s.Length, Point: end},
		}
		sort.Slice(records, func(i, j int) bool { return records[i].Param0 < records[j].Param0 })
		return Result{Kind: Segment, Records: records}, nil
	default:
		return empty, nil
	}
}

// SegmentSegment intersects two segments.
//
// Crossing segments give Point when the crossing lies on both. Collinear
// segments give Empty when their ranges are apart, Point when the ranges
// meet in a single point (within eps), and Segment bounding the overlap
// otherwise.
func SegmentSegment(s0, s1 curve.Segment2, eps float64) (Result, error) {
	if err := validate(s0, s1); err != nil {
		return empty, err
	}
	t0, t1, ok, coincident := lineParams(s0.Line(), s1.Line(), eps)
	if ok {
		u0, in0 := clampRange(t0, 0, s0.Length, eps)
		u1, in1 := clampRange(t1, 0, s1.Length, eps)
		if !in0 || !in1 {
			return empty, nil
		}
		return pointResult(Record{Param0: u0, Param1: u1, Point: s0.Eval(u0)}), nil
	}
	if !coincident {
		return empty, nil
	}

	// Collinear: clip s1's range, expressed on s0's line, to [0, s0.Length].
	line := s0.Line()
	a, b := line.Project(s1.Start()), line.Project(s1.End())
	lo := math.Max(0, math.Min(a, b))
	hi := math.Min(s0.Length, math.Max(a, b))
	if hi < lo-eps {
		return empty, nil
	}
	if hi-lo <= eps {
		t := (lo + hi) / 2
		p := s0.Eval(t)
		return pointResult(Record{Param0: t, Param1: s1.Project(p), Point: p}), nil
	}
	p0, p1 := s0.Eval(lo), s0.Eval(hi)
	return Result{Kind: Segment, Records: []Record{
		{Param0: lo, Param1: s1.Project(p0), Point: p0},
		{Param0: hi, Param1: s1.Project(p1), Point: p1},
	}}, nil
}

// LineCircle intersects an infinite line with a circle.
//
// A secant gives Point with two records, a tangent (within eps) gives Point
// with one. Param1 is the angle of the point on the circle.
func LineCircle(l curve.Line2, c curve.Circle2, eps float64) (Result, error) {
	if err := validate(l, c); err != nil {
		return empty, err
	}
	params := lineCircleParams(l, c, eps)
	if len(params) == 0 {
		return empty, nil
	}
	records := make([]Record, 0, len(params))
	for _, t := range params {
		p := l.Eval(t)
		records = append(records, Record{Param0: t, Param1: c.AngleOf(p), Point: p})
	}
	return pointResult(records...), nil
}

// SegmentCircle intersects a segment with a circle. Crossings outside the
// segment's range are dropped.
func SegmentCircle(s curve.Segment2, c curve.Circle2, eps float64) (Result, error) {
	if err := validate(s, c); err != nil {
		return empty, err
	}
	var records []Record
	for _, raw := range lineCircleParams(s.Line(), c, eps) {
		t, in := clampRange(raw, 0, s.Length, eps)
		if !in {
			continue
		}
		p := s.Eval(t)
		records = append(records, Record{Param0: t, Param1: c.AngleOf(p), Point: p})
	}
	if len(records) == 0 {
		return empty, nil
	}
	return pointResult(records...), nil
}

// lineCircleParams returns the line parameters where l meets c.
func lineCircleParams(l curve.Line2, c curve.Circle2, eps float64) []float64 {
	dist := math.Abs(l.SignedDistance(c.Center))
	switch {
	case dist > c.Radius+eps:
		return nil
	case math.Abs(dist-c.Radius) <= eps:
		return []float64{l.Project(c.Center)}
	}

	// |o + t*d - center|² = r² with |d| = 1.
	m := l.Origin.Sub(c.Center)
	roots := mathutil.SolveQuadratic(1, 2*l.Direction.Dot(m), m.LengthSq()-c.Radius*c.Radius)
	if len(roots) < 2 {
		return []float64{l.Project(c.Center)}
	}
	return roots
}

type validator interface {
	Validate() error
}

func validate(a, b validator) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
