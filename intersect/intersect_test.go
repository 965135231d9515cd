package intersect

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

func seg(t *testing.T, x0, y0, x1, y1 float64) curve.Segment2 {
	t.Helper()
	s, err := curve.NewSegment2(pt(x0, y0), pt(x1, y1))
	if err != nil {
		t.Fatalf("NewSegment2: %v", err)
	}
	return s
}

func line(t *testing.T, x0, y0, x1, y1 float64) curve.Line2 {
	t.Helper()
	l, err := curve.LineThrough(pt(x0, y0), pt(x1, y1))
	if err != nil {
		t.Fatalf("LineThrough: %v", err)
	}
	return l
}

func checkPoints(t *testing.T, r Result, want ...essence.Point2d) {
	t.Helper()
	if len(r.Records) != len(want) {
		t.Fatalf("got %d records %+v, want %d", len(r.Records), r.Records, len(want))
	}
	for i, w := range want {
		if !r.Records[i].Point.EpsilonEquals(w, 1e-9) {
			t.Errorf("record %d point = %v, want %v", i, r.Records[i].Point, w)
		}
	}
}

func TestSegmentSegment(t *testing.T) {
	tests := []struct {
		name   string
		s0, s1 [4]float64
		kind   Kind
		points []essence.Point2d
	}{
		{"crossing", [4]float64{0, 0, 10, 10}, [4]float64{0, 10, 10, 0}, Point, []essence.Point2d{pt(5, 5)}},
		{"collinear overlap", [4]float64{0, 0, 6, 6}, [4]float64{4, 4, 10, 10}, Segment, []essence.Point2d{pt(4, 4), pt(6, 6)}},
		{"endpoint touch", [4]float64{0, 0, 10, 0}, [4]float64{10, 0, 12, 0}, Point, []essence.Point2d{pt(10, 0)}},
		{"collinear apart", [4]float64{0, 0, 10, 0}, [4]float64{11, 0, 12, 0}, Empty, nil},
		{"parallel apart", [4]float64{0, 0, 10, 0}, [4]float64{0, 1, 10, 1}, Empty, nil},
		{"crossing outside range", [4]float64{0, 0, 1, 1}, [4]float64{5, 0, 5, 10}, Empty, nil},
		{"T junction", [4]float64{0, 0, 10, 0}, [4]float64{5, 0, 5, 5}, Point, []essence.Point2d{pt(5, 0)}},
		{"reversed overlap", [4]float64{0, 0, 10, 0}, [4]float64{8, 0, 2, 0}, Segment, []essence.Point2d{pt(2, 0), pt(8, 0)}},
		{"contained", [4]float64{2, 0, 3, 0}, [4]float64{0, 0, 10, 0}, Segment, []essence.Point2d{pt(2, 0), pt(3, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s0 := seg(t, tt.s0[0], tt.s0[1], tt.s0[2], tt.s0[3])
			s1 := seg(t, tt.s1[0], tt.s1[1], tt.s1[2], tt.s1[3])
			r, err := SegmentSegment(s0, s1, eps)
			if err != nil {
				t.Fatalf("SegmentSegment error: %v", err)
			}
			if r.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", r.Kind, tt.kind)
			}
			checkPoints(t, r, tt.points...)
			for _, rec := range r.Records {
				if p := s0.Eval(rec.Param0); !p.EpsilonEquals(rec.Point, 1e-9) {
					t.Errorf("Param0 %v evaluates to %v, want %v", rec.Param0, p, rec.Point)
				}
				if p := s1.Eval(rec.Param1); !p.EpsilonEquals(rec.Point, 1e-9) {
					t.Errorf("Param1 %v evaluates to %v, want %v", rec.Param1, p, rec.Point)
				}
			}
		})
	}
}

func TestSegmentSegment_EndpointParams(t *testing.T) {
	r, err := SegmentSegment(seg(t, 0, 0, 10, 0), seg(t, 10, 0, 12, 0), eps)
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := r.First()
	if !ok || rec.Param0 != 10 || rec.Param1 != 0 {
		t.Errorf("record = %+v, want params (10, 0)", rec)
	}
}

func TestLineLine(t *testing.T) {
	r, err := LineLine(line(t, 0, 0, 1, 0), line(t, 3, -1, 3, 1), eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Point {
		t.Fatalf("Kind = %v, want Point", r.Kind)
	}
	checkPoints(t, r, pt(3, 0))
	if rec := r.Records[0]; math.Abs(rec.Param0-3) > eps || math.Abs(rec.Param1-1) > eps {
		t.Errorf("params = (%v, %v), want (3, 1)", rec.Param0, rec.Param1)
	}

	r, err = LineLine(line(t, 0, 0, 1, 1), line(t, 5, 5, -2, -2), eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Line || len(r.Records) != 0 {
		t.Errorf("coincident lines = %+v, want Line without records", r)
	}

	r, err = LineLine(line(t, 0, 0, 1, 1), line(t, 0, 1, 1, 2), eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Empty {
		t.Errorf("parallel lines = %v, want Empty", r.Kind)
	}
}

func TestLineSegment(t *testing.T) {
	l := line(t, 0, 0, 1, 0)
	tests := []struct {
		name   string
		s      [4]float64
		kind   Kind
		points []essence.Point2d
	}{
		{"crossing", [4]float64{2, -1, 2, 1}, Point, []essence.Point2d{pt(2, 0)}},
		{"touching endpoint", [4]float64{2, 0, 2, 5}, Point, []essence.Point2d{pt(2, 0)}},
		{"missing", [4]float64{2, 1, 2, 5}, Empty, nil},
		{"on the line", [4]float64{7, 0, -3, 0}, Segment, []essence.Point2d{pt(-3, 0), pt(7, 0)}},
		{"parallel", [4]float64{0, 1, 5, 1}, Empty, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LineSegment(l, seg(t, tt.s[0], tt.s[1], tt.s[2], tt.s[3]), eps)
			if err != nil {
				t.Fatal(err)
			}
			if r.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", r.Kind, tt.kind)
			}
			checkPoints(t, r, tt.points...)
		})
	}
}

func TestLineCircle(t *testing.T) {
	c := curve.Circle2{Center: pt(0, 0), Radius: 2}

	r, err := LineCircle(line(t, -5, 0, 5, 0), c, eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Point {
		t.Fatalf("secant Kind = %v", r.Kind)
	}
	checkPoints(t, r, pt(-2, 0), pt(2, 0))
	if math.Abs(r.Records[0].Param1-math.Pi) > eps || r.Records[1].Param1 != 0 {
		t.Errorf("angles = %v, %v", r.Records[0].Param1, r.Records[1].Param1)
	}

	r, err = LineCircle(line(t, -5, 2, 5, 2), c, eps)
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, r, pt(0, 2))

	r, err = LineCircle(line(t, -5, 3, 5, 3), c, eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Empty {
		t.Errorf("miss Kind = %v, want Empty", r.Kind)
	}
}

func TestSegmentCircle(t *testing.T) {
	c := curve.Circle2{Center: pt(0, 0), Radius: 2}

	r, err := SegmentCircle(seg(t, 0, 0, 5, 0), c, eps)
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, r, pt(2, 0))

	r, err = SegmentCircle(seg(t, -1, 0, 1, 0), c, eps)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Empty {
		t.Errorf("segment inside circle Kind = %v, want Empty", r.Kind)
	}
}

func TestDegenerateInput(t *testing.T) {
	good := seg(t, 0, 0, 1, 1)
	if _, err := SegmentSegment(curve.Segment2{}, good, eps); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("zero segment error = %v, want ErrDegenerate", err)
	}
	if _, err := LineLine(curve.Line2{}, good.Line(), eps); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("zero line error = %v, want ErrDegenerate", err)
	}
	if _, err := LineCircle(good.Line(), curve.Circle2{Radius: -1}, eps); !errors.Is(err, essence.ErrDegenerate) {
		t.Errorf("negative radius error = %v, want ErrDegenerate", err)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Empty: "Empty", Point: "Point", Line: "Line", Segment: "Segment", 9: "Kind(9)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
