package mathutil

import "math"

// SolveQuadratic finds the real roots of ax^2 + bx + c = 0 in ascending
// order.
//
// Near-zero a degrades to the linear equation bx + c = 0. When every
// coefficient is zero the equation holds for all x and a single 0 is
// returned. A negative discriminant yields no roots.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scaling by a keeps the discriminant from overflowing.
	sc0 := c / a
	sc1 := b / a
	if !IsFinite(sc0) || !IsFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !IsFinite(arg) {
		// Discriminant overflow: one root from x^2 + sc1*x = 0, the other
		// from the product of roots.
		return orderedRoots(-sc1, sc0/-sc1)
	}
	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	// Citardauq form avoids cancellation between -b and sqrt(disc).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return orderedRoots(root1, sc0/root1)
}

// SolveQuadraticInInterval returns the roots of ax^2 + bx + c = 0 that lie in
// [lo, hi]. Roots within EpsilonFloat64 of a bound are snapped onto it.
func SolveQuadraticInInterval(a, b, c, lo, hi float64) []float64 {
	roots := SolveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil
	}
	out := roots[:0]
	for _, r := range roots {
		if r < lo-EpsilonFloat64 || r > hi+EpsilonFloat64 {
			continue
		}
		out = append(out, math.Min(math.Max(r, lo), hi))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if IsFinite(root) {
		return []float64{root}
	}
	if c == 0 && b == 0 {
		return []float64{0}
	}
	return nil
}

func orderedRoots(r1, r2 float64) []float64 {
	if !IsFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}
