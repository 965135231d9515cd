// Package surface provides parametrized planar surfaces in 3D: planes and
// triangles.
//
// A surface maps a parameter pair (u, v) to a point with Evaluate and maps
// a point back to the parameters of its orthogonal projection with
// Project, so that
//
//	u2, v2, _ := s.Project(s.Evaluate(u, v)) // (u2, v2) ≈ (u, v)
//
// Project solves the overdetermined 3×2 system in the least-squares sense
// with a QR factorization, which also gives the right answer for points off
// the surface.
//
// # Usage
//
//	tri, err := surface.NewTriangle3(
//	    essence.P3(0.0, 0.0, 0.0),
//	    essence.P3(4.0, 0.0, 0.0),
//	    essence.P3(0.0, 3.0, 0.0),
//	)
//	if err != nil {
//	    return err
//	}
//	u, v, _ := tri.Project(essence.P3(1.0, 1.0, 5.0))
//	inside := tri.Contains(u, v, mathutil.EpsilonFloat64)
package surface
