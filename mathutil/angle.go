package mathutil

import "math"

// NormalizeAngle maps a to the range [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleInSpan reports whether theta lies in the circular span that starts at
// start and extends counter-clockwise by sweep radians. The span is
// half-open: start is inside, start+sweep is not (unless the span covers the
// whole circle). eps widens the start side only.
//
// sweep must be non-negative; a sweep of 2π or more covers every angle.
func AngleInSpan(theta, start, sweep, eps float64) bool {
	if sweep >= TwoPi {
		return true
	}
	d := NormalizeAngle(theta - start)
	if d < sweep {
		return true
	}
	// d close to 2π means theta sits just before start.
	return TwoPi-d <= eps
}
