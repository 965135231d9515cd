package essence

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func box(x0, y0, x1, y1 float64) BoundingBox2d {
	return NewBox2(P2(x0, y0), P2(x1, y1))
}

func TestBox2_Basics(t *testing.T) {
	b := box(4, 3, 0, 1)
	if b.Min != P2(0.0, 1.0) || b.Max != P2(4.0, 3.0) {
		t.Errorf("NewBox2 did not order corners: %v", b)
	}
	if b.Width() != 4 || b.Height() != 2 {
		t.Errorf("size = %v x %v, want 4 x 2", b.Width(), b.Height())
	}
	if b.Center() != P2(2.0, 2.0) {
		t.Errorf("Center = %v", b.Center())
	}
	if !b.ContainsPoint(P2(4.0, 3.0)) || b.ContainsPoint(P2(4.1, 3.0)) {
		t.Error("ContainsPoint should include bounds only")
	}
}

func TestBox2_Empty(t *testing.T) {
	e := EmptyBox2[float64]()
	if !e.IsEmpty() {
		t.Fatal("EmptyBox2 is not empty")
	}
	if e.Width() != 0 || e.Height() != 0 {
		t.Errorf("empty size = %v", e.Size())
	}
	if e.String() != "Empty" {
		t.Errorf("String = %q", e.String())
	}
	if got := Box2FromPoints[float64](); !got.IsEmpty() {
		t.Errorf("Box2FromPoints() = %v, want empty", got)
	}
	got := Box2FromPoints(P2(1.0, 5.0), P2(-1.0, 2.0), P2(0.0, 7.0))
	if got != box(-1, 2, 1, 7) {
		t.Errorf("Box2FromPoints = %v", got)
	}
}

func TestBox2_Algebra(t *testing.T) {
	boxes := []BoundingBox2d{
		box(0, 0, 10, 10),
		box(5, 5, 15, 15),
		box(10, 0, 20, 10),  // shares an edge with the first
		box(10, 10, 12, 12), // shares a corner with the first
		box(30, 30, 40, 40),
		box(2, 2, 3, 3),
		EmptyBox2[float64](),
		InfiniteBox2[float64](),
	}

	for i, a := range boxes {
		for j, b := range boxes {
			u := a.Union(b)
			if !u.Contains(a) || !u.Contains(b) {
				t.Errorf("[%d,%d] union %v does not contain both", i, j, u)
			}
			inter := a.Intersect(b)
			if inter.IsEmpty() != !a.IntersectsWith(b) {
				t.Errorf("[%d,%d] Intersect empty=%v but IntersectsWith=%v", i, j, inter.IsEmpty(), a.IntersectsWith(b))
			}
			if a.Touch(b) {
				if !a.IntersectsWith(b) {
					t.Errorf("[%d,%d] Touch without IntersectsWith", i, j)
				}
				if inter.Width() > 0 && inter.Height() > 0 {
					t.Errorf("[%d,%d] Touch with interior overlap %v", i, j, inter)
				}
			}
			if a.Union(b) != b.Union(a) {
				t.Errorf("[%d,%d] Union not commutative", i, j)
			}
		}
	}
}

func TestBox2_EmptyIdentity(t *testing.T) {
	e := EmptyBox2[float64]()
	a := box(1, 2, 3, 4)
	if a.Union(e) != a || e.Union(a) != a {
		t.Error("empty is not the identity for Union")
	}
	if !a.Intersect(e).IsEmpty() || !e.Intersect(a).IsEmpty() {
		t.Error("empty is not absorbing for Intersect")
	}
	if !a.Contains(e) || e.Contains(a) {
		t.Error("every box contains empty and empty contains nothing else")
	}
}

func TestBox2_Touch(t *testing.T) {
	a := box(0, 0, 10, 10)
	tests := []struct {
		name      string
		b         BoundingBox2d
		touch     bool
		intersect bool
	}{
		{"edge", box(10, 0, 20, 10), true, true},
		{"corner", box(10, 10, 12, 12), true, true},
		{"overlap", box(5, 5, 15, 15), false, true},
		{"inside", box(2, 2, 3, 3), false, true},
		{"apart", box(11, 0, 20, 10), false, false},
		{"point inside", box(5, 5, 5, 5), false, true},
		{"segment inside", box(5, 2, 5, 8), false, true},
		{"point on edge", box(5, 10, 5, 10), true, true},
		{"segment on edge", box(0, 3, 0, 7), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Touch(tt.b); got != tt.touch {
				t.Errorf("Touch = %v, want %v", got, tt.touch)
			}
			if got := a.IntersectsWith(tt.b); got != tt.intersect {
				t.Errorf("IntersectsWith = %v, want %v", got, tt.intersect)
			}
		})
	}
}

func TestBox2_Saturation(t *testing.T) {
	inf := InfiniteBox2[int32]()
	if got := inf.Width(); got != math.MaxInt32 {
		t.Errorf("infinite width = %v, want MaxInt32", got)
	}
	if got := inf.Translate(V2[int32](5, -5)); got != inf {
		t.Errorf("translated infinite box = %v, want unchanged", got)
	}
	if got := inf.Inflate(10); got != inf {
		t.Errorf("inflated infinite box = %v, want unchanged", got)
	}

	b := NewBox2(P2[int32](math.MaxInt32-5, 0), P2[int32](math.MaxInt32-1, 1))
	moved := b.Translate(V2[int32](100, 0))
	if moved.Max.X != math.MaxInt32 || moved.Min.X != math.MaxInt32 {
		t.Errorf("Translate did not saturate: %v", moved)
	}

	f := InfiniteBox2[float64]()
	if w := f.Width(); math.IsInf(w, 0) || w != math.MaxFloat64 {
		t.Errorf("float infinite width = %v, want MaxFloat64", w)
	}
	half := NewBox2(P2(-math.MaxFloat64, 0.0), P2(0.0, 1.0))
	if got := half.Translate(V2(10.0, 0.0)); got.Min.X != -math.MaxFloat64 || got.Max.X != 10 {
		t.Errorf("sentinel min should stay in place: %v", got)
	}
}

func TestBox2_InflateTranslate(t *testing.T) {
	b := box(0, 0, 2, 2)
	if got := b.Inflate(1); got != box(-1, -1, 3, 3) {
		t.Errorf("Inflate(1) = %v", got)
	}
	if got := b.Inflate(-2); !got.IsEmpty() {
		t.Errorf("Inflate(-2) = %v, want empty", got)
	}
	if got := b.Translate(V2(1.0, -1.0)); got != box(1, -1, 3, 1) {
		t.Errorf("Translate = %v", got)
	}
	if got := b.Extend(P2(5.0, -1.0)); got != box(0, -1, 5, 2) {
		t.Errorf("Extend = %v", got)
	}
}

func TestBox2_R2(t *testing.T) {
	b := box(1, 2, 3, 4)
	r := b.R2Box()
	if r != (r2.Box{Min: r2.Vec{X: 1, Y: 2}, Max: r2.Vec{X: 3, Y: 4}}) {
		t.Errorf("R2Box = %v", r)
	}
	if got := BoundingBox2FromR2[float64](r); got != b {
		t.Errorf("BoundingBox2FromR2 = %v, want %v", got, b)
	}
	inv := r2.Box{Min: r2.Vec{X: 1}, Max: r2.Vec{X: 0}}
	if got := BoundingBox2FromR2[int32](inv); !got.IsEmpty() {
		t.Errorf("inverted r2 box = %v, want empty", got)
	}
}

func TestBox3(t *testing.T) {
	a := NewBox3(P3(0.0, 0.0, 0.0), P3(2.0, 2.0, 2.0))
	b := NewBox3(P3(2.0, 0.0, 0.0), P3(4.0, 2.0, 2.0))
	if !a.Touch(b) || !a.IntersectsWith(b) {
		t.Error("face-sharing boxes should touch")
	}
	if p := NewBox3(P3(1.0, 1.0, 1.0), P3(1.0, 1.0, 1.0)); a.Touch(p) {
		t.Error("point box inside the interior should not touch")
	}
	if f := NewBox3(P3(1.0, 0.5, 0.5), P3(1.0, 1.5, 1.5)); a.Touch(f) {
		t.Error("flat box inside the interior should not touch")
	}
	if f := NewBox3(P3(0.5, 0.5, 2.0), P3(1.5, 1.5, 2.0)); !a.Touch(f) {
		t.Error("flat box on the top face should touch")
	}
	if got := a.Union(b); got.Width() != 4 || got.Depth() != 2 {
		t.Errorf("Union = %v", got)
	}
	if !a.Intersect(EmptyBox3[float64]()).IsEmpty() {
		t.Error("empty not absorbing")
	}
	if got := a.Center(); got != P3(1.0, 1.0, 1.0) {
		t.Errorf("Center = %v", got)
	}
	if got := BoundingBox3FromR3[float64](a.R3Box()); got != a {
		t.Errorf("r3 round trip = %v", got)
	}
	r := r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1e12, Y: 1, Z: 1}}
	if got := BoundingBox3FromR3[int32](r); got.Max.X != math.MaxInt32 {
		t.Errorf("r3 conversion should saturate: %v", got)
	}
	if got := Box3FromPoints(P3[float32](1, 2, 3)); got.Width() != 0 || got.IsEmpty() {
		t.Errorf("single point box = %v", got)
	}
}
