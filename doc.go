// Package essence provides numeric tuples and geometry primitives for Go.
//
// # Overview
//
// essence models fixed-size numeric values: tuples, vectors, points and
// colors with 2 to 4 components of one numeric kind (float64, float32,
// int32 or uint8). Every value is an immutable generic struct with an alias
// per kind, for example Vector2d, Point3f, Tuple4i or Color4b.
//
// # Quick Start
//
//	import "github.com/gogpu/essence"
//
//	v := essence.V2(3.0, 4.0)         // Vector2d
//	u, err := v.Unit()                 // fails for a zero vector
//	p := essence.P2(1.0, 1.0).Add(u)   // point + vector = point
//
//	// Convert between representations
//	pf, err := essence.Convert[essence.Point2f](p)
//	c, err := essence.Convert[essence.Color3b](essence.RGB[float32](1, 0.5, 0))
//
// # Capability Interfaces
//
// Code that accepts "any 3-component vector of float32" takes a
// Vector3Of[float32]; code that accepts any value at all takes a Tuple.
// Convert resolves such interfaces to the registered concrete type.
//
// # Sub-packages
//
// The library is organized into:
//   - mathutil: epsilon comparisons, clamping, angles, quadratic roots
//   - affine: 2D affine transforms
//   - curve: lines, segments, circles and arcs
//   - intersect: line/segment/circle intersection classification
//   - distance: closest-point queries
//   - surface: planes and triangles in 3D
//
// # Tolerances
//
// Geometric predicates never use exact equality. Every predicate takes an
// explicit epsilon; mathutil names the defaults and Kind.Epsilon maps a
// numeric kind to its default.
//
// # Logging
//
// essence is silent by default. SetLogger installs a log/slog logger that
// receives debug records for rejected conversions, rejected text and
// degenerate geometry.
package essence

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
