package mathutil

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEpsilonEquals(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"identical", 1, 1, 0, true},
		{"within", 1, 1 + 1e-10, 1e-9, true},
		{"boundary", 1, 1.5, 0.5, true},
		{"outside", 1, 1.1, 1e-9, false},
		{"max vs max-1", math.MaxFloat64, math.MaxFloat64 - 1, 1e-9, true},
		{"max vs -max", math.MaxFloat64, -math.MaxFloat64, 1e-9, false},
		{"inf vs inf", inf, inf, 1e-9, true},
		{"inf vs -inf", inf, -inf, 1e-9, false},
		{"inf vs max", inf, math.MaxFloat64, math.MaxFloat64, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
		{"nan vs zero", math.NaN(), 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EpsilonEquals(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("EpsilonEquals(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
			// Symmetric.
			if got := EpsilonEquals(tt.b, tt.a, tt.eps); got != tt.want {
				t.Errorf("EpsilonEquals(%v, %v, %v) = %v, want %v", tt.b, tt.a, tt.eps, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, lo, hi   float64
		want        float64
		wantInvalid bool
	}{
		{"inside", 0.5, 0, 1, 0.5, false},
		{"below", -2, 0, 1, 0, false},
		{"above", 7, 0, 1, 1, false},
		{"degenerate range", 3, 2, 2, 2, false},
		{"inverted range", 0.5, 1, 0, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clamp(tt.v, tt.lo, tt.hi)
			if tt.wantInvalid {
				if !errors.Is(err, ErrInvalidRange) {
					t.Fatalf("Clamp(%v, %v, %v) error = %v, want ErrInvalidRange", tt.v, tt.lo, tt.hi, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Clamp(%v, %v, %v) unexpected error: %v", tt.v, tt.lo, tt.hi, err)
			}
			if got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	got, err := Clamp[int32](300, 0, 255)
	if err != nil || got != 255 {
		t.Errorf("Clamp[int32](300, 0, 255) = %v, %v; want 255, nil", got, err)
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1}, {math.NaN(), 0},
	} {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGenericHelpers(t *testing.T) {
	if Abs(int32(-4)) != 4 {
		t.Error("Abs(int32(-4)) != 4")
	}
	if Abs(-2.5) != 2.5 {
		t.Error("Abs(-2.5) != 2.5")
	}
	if Sqr(uint8(12)) != 144 {
		t.Error("Sqr(uint8(12)) != 144")
	}
	if Min(3, 2) != 2 || Max(3, 2) != 3 {
		t.Error("Min/Max wrong")
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Error("Lerp(2, 4, 0.5) != 3")
	}
	if DistanceSq2(0, 0, 3, 4) != 25 {
		t.Error("DistanceSq2(0, 0, 3, 4) != 25")
	}
	if DistanceSq3(1, 1, 1, 2, 3, 3) != 9 {
		t.Error("DistanceSq3 != 9")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-300, 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v outside [0, 2π)", tt.in, got)
		}
	}
}

func TestAngleInSpan(t *testing.T) {
	tests := []struct {
		name                string
		theta, start, sweep float64
		want                bool
	}{
		{"inside", 0.5, 0, 1, true},
		{"start included", 0, 0, 1, true},
		{"end excluded", 1, 0, 1, false},
		{"outside", 2, 0, 1, false},
		{"wrap inside before zero", -0.1, 3 * math.Pi / 2, math.Pi, true},
		{"wrap inside after zero", 0.2, 3 * math.Pi / 2, math.Pi, true},
		{"wrap outside", math.Pi, 3 * math.Pi / 2, math.Pi, false},
		{"full circle", 4, 0, TwoPi, true},
		{"just before start within eps", -1e-13, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleInSpan(tt.theta, tt.start, tt.sweep, EpsilonAngle); got != tt.want {
				t.Errorf("AngleInSpan(%v, %v, %v) = %v, want %v", tt.theta, tt.start, tt.sweep, got, tt.want)
			}
		})
	}
}

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sorted := make([]float64, len(roots))
	copy(sorted, roots)
	sort.Float64s(sorted)

	for i := range sorted {
		if !almostEqual(sorted[i], expected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v", name, i, sorted[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"x^2 - 5 = 0", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"x^2 + 5 = 0 (no real roots)", 1, 0, 5, nil},
		{"x + 5 = 0 (linear)", 0, 1, 5, []float64{-5}},
		{"x^2 + 2x + 1 = 0 (double root)", 1, 2, 1, []float64{-1}},
		{"x^2 - 5x + 6 = 0", 1, -5, 6, []float64{2, 3}},
		{"all zero", 0, 0, 0, []float64{0}},
		{"inconsistent", 0, 0, 1, nil},
		{"large coefficients", 1, -1e200, 1, []float64{1e-200, 1e200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, 1e-9*math.Max(1, math.Abs(tt.b)))
			for i := 1; i < len(roots); i++ {
				if roots[i-1] > roots[i] {
					t.Errorf("roots not ascending: %v", roots)
				}
			}
		})
	}
}

func TestSolveQuadraticInInterval(t *testing.T) {
	roots := SolveQuadraticInInterval(1, -5, 6, 0, 2.5)
	verifySolverRoots(t, "one root in range", roots, []float64{2}, 1e-12)

	roots = SolveQuadraticInInterval(1, 0, -1, -1, 1)
	verifySolverRoots(t, "roots on bounds", roots, []float64{-1, 1}, 1e-12)

	if roots := SolveQuadraticInInterval(1, 0, -1, 2, 3); roots != nil {
		t.Errorf("expected no roots, got %v", roots)
	}
}
