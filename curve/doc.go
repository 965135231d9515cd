// Package curve provides the 2D primitives used by the intersect and
// distance packages: infinite lines, segments, circles and circular arcs.
//
// All primitives work in float64 and keep their direction vectors unit
// length, so curve parameters are arc lengths (or angles for circles and
// arcs). Constructors reject degenerate input with
// *essence.DegenerateInputError; the zero value of a primitive is not valid
// and is rejected by its Validate method.
package curve
