package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/curve"
	"github.com/gogpu/essence/mathutil"
)

const eps = mathutil.EpsilonFloat64

func pt(x, y float64) essence.Point2d { return essence.P2(x, y) }

func TestPointCircle_Center(t *testing.T) {
	c, err := curve.NewCircle2(pt(1, 2), 3)
	if err != nil {
		t.Fatal(err)
	}
	r, err := PointCircle(pt(1, 2), c, false, eps)
	if err != nil {
		t.Fatalf("PointCircle error: %v", err)
	}
	if r.Distance() != 3 {
		t.Errorf("Distance = %v, want radius 3", r.Distance())
	}
	if r.Closest != c.Eval(0) || r.Closest != pt(4, 2) {
		t.Errorf("Closest = %v, want the angle-0 point (4, 2)", r.Closest)
	}
	if r.Param != 0 {
		t.Errorf("Param = %v, want 0", r.Param)
	}
}

func TestPointCircle_NearCenter(t *testing.T) {
	c := curve.Circle2{Center: pt(1, 2), Radius: 3}
	tests := []struct {
		name string
		p    essence.Point2d
	}{
		{"above center", pt(1, 2+eps/2)},
		{"right of center", pt(1+eps/2, 2)},
		{"left of center", pt(1-eps, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := PointCircle(tt.p, c, false, eps)
			if err != nil {
				t.Fatal(err)
			}
			if r.Closest != c.Eval(0) || r.Param != 0 {
				t.Errorf("got closest %v at %v, want the angle-0 point", r.Closest, r.Param)
			}
			if want := tt.p.DistanceSq(r.Closest); r.DistanceSq != want {
				t.Errorf("DistanceSq = %v, want %v to the returned point", r.DistanceSq, want)
			}
		})
	}
}

func TestPointCircle(t *testing.T) {
	c := curve.Circle2{Center: pt(1, 2), Radius: 3}
	tests := []struct {
		name        string
		p           essence.Point2d
		solid       bool
		wantDistSq  float64
		wantClosest essence.Point2d
	}{
		{"outside", pt(1, 7), false, 4, pt(1, 5)},
		{"outside solid", pt(1, 7), true, 4, pt(1, 5)},
		{"inside hollow", pt(1, 3), false, 4, pt(1, 5)},
		{"inside solid", pt(1, 3), true, 0, pt(1, 3)},
		{"center solid", pt(1, 2), true, 0, pt(1, 2)},
		{"on the circle", pt(-2, 2), false, 0, pt(-2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := PointCircle(tt.p, c, tt.solid, eps)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(r.DistanceSq-tt.wantDistSq) > eps {
				t.Errorf("DistanceSq = %v, want %v", r.DistanceSq, tt.wantDistSq)
			}
			if !r.Closest.EpsilonEquals(tt.wantClosest, eps) {
				t.Errorf("Closest = %v, want %v", r.Closest, tt.wantClosest)
			}
		})
	}

	if _, err := PointCircle(pt(0, 0), curve.Circle2{Radius: math.NaN()}, false, eps); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("NaN radius error = %v, want ErrDegenerate", err)
	}
}

func TestPointSegment(t *testing.T) {
	s, err := curve.NewSegment2(pt(0, 0), pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name        string
		p           essence.Point2d
		wantDistSq  float64
		wantClosest essence.Point2d
		wantParam   float64
	}{
		{"above interior", pt(5, 3), 9, pt(5, 0), 5},
		{"before start", pt(-3, 4), 25, pt(0, 0), 0},
		{"past end", pt(13, 4), 25, pt(10, 0), 10},
		{"on segment", pt(7, 0), 0, pt(7, 0), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := PointSegment(tt.p, s)
			if err != nil {
				t.Fatal(err)
			}
			if r.DistanceSq != tt.wantDistSq || r.Closest != tt.wantClosest || r.Param != tt.wantParam {
				t.Errorf("got %+v, want (%v, %v, %v)", r, tt.wantDistSq, tt.wantClosest, tt.wantParam)
			}
		})
	}

	if _, err := PointSegment(pt(0, 0), curve.Segment2{}); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("zero segment error = %v, want ErrDegenerate", err)
	}
}

func TestPointLine(t *testing.T) {
	l, err := curve.LineThrough(pt(0, 0), pt(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	r, err := PointLine(pt(-5, 2), l)
	if err != nil {
		t.Fatal(err)
	}
	if r.DistanceSq != 4 || r.Closest != pt(-5, 0) || r.Param != -5 {
		t.Errorf("PointLine = %+v", r)
	}
}

func TestPointArc(t *testing.T) {
	unit := curve.Circle2{Center: pt(0, 0), Radius: 1}
	quadrant, err := curve.NewArc2(unit, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		p           essence.Point2d
		wantDist    float64
		wantClosest essence.Point2d
		wantParam   float64
	}{
		{"inside span", pt(2, 2), 2*math.Sqrt2 - 1, pt(math.Sqrt2/2, math.Sqrt2/2), math.Pi / 4},
		{"nearer end", pt(-1, -0.1), math.Sqrt(2.21), pt(0, 1), math.Pi / 2},
		{"tie goes to start", pt(-1, -1), math.Sqrt(5), pt(1, 0), 0},
		{"on start", pt(3, 0), 2, pt(1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := PointArc(tt.p, quadrant, eps)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(r.Distance()-tt.wantDist) > 1e-9 {
				t.Errorf("Distance = %v, want %v", r.Distance(), tt.wantDist)
			}
			if !r.Closest.EpsilonEquals(tt.wantClosest, 1e-9) {
				t.Errorf("Closest = %v, want %v", r.Closest, tt.wantClosest)
			}
			if math.Abs(r.Param-tt.wantParam) > 1e-9 {
				t.Errorf("Param = %v, want %v", r.Param, tt.wantParam)
			}
		})
	}
}

func TestPointArc_WrapAndCenter(t *testing.T) {
	unit := curve.Circle2{Center: pt(0, 0), Radius: 1}

	// From 270° through 0° to 90°.
	right, err := curve.NewArc2(unit, -math.Pi/2, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	r, err := PointArc(pt(5, 0), right, eps)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Closest.EpsilonEquals(pt(1, 0), 1e-9) || math.Abs(r.Param-math.Pi/2) > 1e-9 {
		t.Errorf("wrapped arc = %+v, want (1, 0) at π/2 past start", r)
	}

	// The center is equidistant from every arc point; angle 0 is outside
	// this arc, so the start point wins the endpoint tie.
	left, err := curve.NewArc2(unit, math.Pi/2, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	r, err = PointArc(pt(0, 0), left, eps)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Closest.EpsilonEquals(left.StartPoint(), 1e-12) || math.Abs(r.Distance()-1) > 1e-12 {
		t.Errorf("center query = %+v, want start point at distance 1", r)
	}

	if _, err := PointArc(pt(0, 0), curve.Arc2{}, eps); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("zero arc error = %v, want ErrDegenerate", err)
	}
}

func TestPointBox(t *testing.T) {
	b := essence.NewBox2(pt(0, 0), pt(2, 2))
	tests := []struct {
		p           essence.Point2d
		wantDistSq  float64
		wantClosest essence.Point2d
	}{
		{pt(1, 1), 0, pt(1, 1)},
		{pt(5, -2), 13, pt(2, 0)},
		{pt(-1, 1), 1, pt(0, 1)},
	}
	for _, tt := range tests {
		r, err := PointBox(tt.p, b)
		if err != nil {
			t.Fatal(err)
		}
		if r.DistanceSq != tt.wantDistSq || r.Closest != tt.wantClosest {
			t.Errorf("PointBox(%v) = %+v", tt.p, r)
		}
	}

	if _, err := PointBox(pt(0, 0), essence.EmptyBox2[float64]()); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("empty box error = %v, want ErrDegenerate", err)
	}
}
