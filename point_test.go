package essence

import (
	"math"
	"testing"
)

func TestPoint2_Arithmetic(t *testing.T) {
	p := P2(1.0, 2.0)
	q := P2(4.0, 6.0)

	if got := q.Sub(p); got != V2(3.0, 4.0) {
		t.Errorf("q.Sub(p) = %v, want (3, 4)", got)
	}
	if got := p.Add(V2(3.0, 4.0)); got != q {
		t.Errorf("p.Add(v) = %v, want %v", got, q)
	}
	if got := q.SubVector(V2(3.0, 4.0)); got != p {
		t.Errorf("q.SubVector(v) = %v, want %v", got, p)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := p.DistanceSq(q); got != 25 {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
}

func TestPoint2_Lerp(t *testing.T) {
	tests := []struct {
		name   string
		alpha  float64
		expect Point2d
	}{
		{"start", 0, P2(0.0, 0.0)},
		{"middle", 0.5, P2(5.0, 10.0)},
		{"end", 1, P2(10.0, 20.0)},
		{"extrapolate", 2, P2(20.0, 40.0)},
	}

	p, q := P2(0.0, 0.0), P2(10.0, 20.0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Lerp(q, tt.alpha); got != tt.expect {
				t.Errorf("Lerp(%v) = %v, want %v", tt.alpha, got, tt.expect)
			}
		})
	}
}

func TestPoint2_Lineal(t *testing.T) {
	p, q := P2(2.0, 0.0), P2(0.0, 4.0)
	if got := p.Lineal(q, 0.5, 0.25); got != P2(1.0, 1.0) {
		t.Errorf("Lineal = %v, want (1, 1)", got)
	}
	// Lineal with alpha+beta=1 agrees with Lerp.
	if a, b := p.Lineal(q, 0.7, 0.3), p.Lerp(q, 0.3); a.Distance(b) > 1e-12 {
		t.Errorf("Lineal(0.7, 0.3) = %v, Lerp(0.3) = %v", a, b)
	}
}

func TestPoint2_IntegerKind(t *testing.T) {
	p, q := P2[int32](0, 0), P2[int32](3, -3)
	if got := p.Lerp(q, 0.5); got != P2[int32](1, -1) {
		t.Errorf("int32 Lerp = %v, want truncated (1, -1)", got)
	}
	if got := q.Distance(p); math.Abs(got-math.Sqrt(18)) > 1e-12 {
		t.Errorf("int32 Distance = %v", got)
	}
}

func TestPoint3_Distance(t *testing.T) {
	p, q := P3(1.0, 2.0, 3.0), P3(2.0, 4.0, 5.0)
	if got := p.DistanceSq(q); got != 9 {
		t.Errorf("DistanceSq = %v, want 9", got)
	}
	if got := q.Sub(p).ToPoint(); got != P3(1.0, 2.0, 2.0) {
		t.Errorf("Sub.ToPoint = %v", got)
	}
	if !(Point3i{}).IsOrigin() || P3[int32](0, 0, 1).IsOrigin() {
		t.Error("IsOrigin mismatch")
	}
}

func TestPoint4_ToVector(t *testing.T) {
	p := P4[float32](1, 2, 3, 1)
	if got := p.ToVector(); got != V4[float32](1, 2, 3, 1) {
		t.Errorf("ToVector = %v", got)
	}
	if got := p.Lineal(p, 0.5, 0.5); got != p {
		t.Errorf("Lineal(p, 0.5, 0.5) = %v, want %v", got, p)
	}
}

func TestBuffer2(t *testing.T) {
	b := NewBuffer2[float64](P2(1.0, 1.0))
	for i := 0; i < 4; i++ {
		b.Add(V2(0.5, -0.25))
	}
	if got := b.Point(); got != P2(3.0, 0.0) {
		t.Errorf("after Add = %v, want (3, 0)", got)
	}
	b.Scale(2).Sub(V2(1.0, 1.0))
	if got := b.Vector(); got != V2(5.0, -1.0) {
		t.Errorf("after Scale.Sub = %v, want (5, -1)", got)
	}
	snapshot := b.Vector()
	b.Reset()
	if snapshot != V2(5.0, -1.0) || !b.Vector().IsZero() {
		t.Error("snapshot should not alias the buffer")
	}
}

func TestBuffer3(t *testing.T) {
	b := NewBuffer3[int32](T3[int32](1, 2, 3))
	b.Add(V3[int32](1, 1, 1)).Scale(0.5)
	if got := b.Point(); got != P3[int32](1, 1, 2) {
		t.Errorf("Buffer3 = %v, want (1, 1, 2)", got)
	}
	b.Set(9, 8, 7).Sub(V3[int32](9, 8, 7))
	if !b.Vector().IsZero() {
		t.Errorf("Buffer3 = %v, want zero", b.Vector())
	}
}
