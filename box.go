package essence

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate is the set of component types usable in bounding boxes.
type Coordinate interface {
	float64 | float32 | int32
}

// Box2 is an axis-aligned 2D bounding box with inclusive bounds.
//
// The lowest and highest values of T act as unbounded markers: the empty
// box has Min at the highest value and Max at the lowest, so it absorbs
// under Union and is absorbed under Intersect. Operations saturate at the
// kind's range and leave marker components in place.
type Box2[T Coordinate] struct {
	Min, Max Point2[T]
}

// Box3 is an axis-aligned 3D bounding box. See Box2.
type Box3[T Coordinate] struct {
	Min, Max Point3[T]
}

// Bounding box aliases by kind.
type (
	BoundingBox2d = Box2[float64]
	BoundingBox2f = Box2[float32]
	BoundingBox2i = Box2[int32]

	BoundingBox3d = Box3[float64]
	BoundingBox3f = Box3[float32]
	BoundingBox3i = Box3[int32]
)

func kindRange[T Coordinate]() (lo, hi T) {
	l, h := KindOf[T]().Range()
	return T(l), T(h)
}

// saturate casts v into T, clamping at the kind's range.
func saturate[T Coordinate](v float64) T {
	lo, hi := KindOf[T]().Range()
	if v < lo {
		v = lo
	} else if v > hi {
		v = hi
	}
	return fromFloat[T](v)
}

// shift adds d to v unless v is an unbounded marker.
func shift[T Coordinate](v T, d float64) T {
	lo, hi := kindRange[T]()
	if v == lo || v == hi {
		return v
	}
	return saturate[T](float64(v) + d)
}

// extent returns hi-lo, saturating at the highest value of T.
func extent[T Coordinate](lo, hi T) T {
	if lo > hi {
		return 0
	}
	return saturate[T](float64(hi) - float64(lo))
}

// sharedBound reports whether two overlapping ranges meet only at a bound
// that belongs to both of them.
func sharedBound[T Coordinate](lo0, hi0, lo1, hi1 T) bool {
	return hi0 == lo1 || hi1 == lo0
}

func midpoint[T Coordinate](lo, hi T) T {
	return fromFloat[T](float64(lo)/2 + float64(hi)/2)
}

// EmptyBox2 returns the empty box.
func EmptyBox2[T Coordinate]() Box2[T] {
	lo, hi := kindRange[T]()
	return Box2[T]{Min: P2(hi, hi), Max: P2(lo, lo)}
}

// InfiniteBox2 returns the box covering the whole range of T.
func InfiniteBox2[T Coordinate]() Box2[T] {
	lo, hi := kindRange[T]()
	return Box2[T]{Min: P2(lo, lo), Max: P2(hi, hi)}
}

// NewBox2 returns the smallest box containing a and b.
func NewBox2[T Coordinate](a, b Point2[T]) Box2[T] {
	return Box2[T]{
		Min: P2(min(a.X, b.X), min(a.Y, b.Y)),
		Max: P2(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

// Box2FromPoints returns the smallest box containing every point. No
// points yield the empty box.
func Box2FromPoints[T Coordinate](pts ...Point2[T]) Box2[T] {
	b := EmptyBox2[T]()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// IsEmpty reports whether the box contains no point.
func (b Box2[T]) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns Max.X-Min.X, 0 for the empty box.
func (b Box2[T]) Width() T {
	if b.IsEmpty() {
		return 0
	}
	return extent(b.Min.X, b.Max.X)
}

// Height returns Max.Y-Min.Y, 0 for the empty box.
func (b Box2[T]) Height() T {
	if b.IsEmpty() {
		return 0
	}
	return extent(b.Min.Y, b.Max.Y)
}

// Size returns the width and height as a vector.
func (b Box2[T]) Size() Vector2[T] {
	return V2(b.Width(), b.Height())
}

// Center returns the midpoint of the box. The empty box has no center and
// reports the origin.
func (b Box2[T]) Center() Point2[T] {
	if b.IsEmpty() {
		return Point2[T]{}
	}
	return P2(midpoint(b.Min.X, b.Max.X), midpoint(b.Min.Y, b.Max.Y))
}

// Union returns the smallest box containing both boxes.
func (b Box2[T]) Union(o Box2[T]) Box2[T] {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return Box2[T]{
		Min: P2(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)),
		Max: P2(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)),
	}
}

// Intersect returns the overlap of both boxes, or the empty box.
func (b Box2[T]) Intersect(o Box2[T]) Box2[T] {
	r := Box2[T]{
		Min: P2(max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y)),
		Max: P2(min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y)),
	}
	if r.IsEmpty() {
		return EmptyBox2[T]()
	}
	return r
}

// Contains reports whether every point of o lies in b. Every box contains
// the empty box.
func (b Box2[T]) Contains(o Box2[T]) bool {
	if o.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Min.X && b.Min.Y <= o.Min.Y &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y
}

// ContainsPoint reports whether p lies in b, bounds included.
func (b Box2[T]) ContainsPoint(p Point2[T]) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// IntersectsWith reports whether the boxes share at least one point,
// boundary contact included.
func (b Box2[T]) IntersectsWith(o Box2[T]) bool {
	return !b.Intersect(o).IsEmpty()
}

// Touch reports whether the boxes share boundary points but no interior.
// A face of zero extent counts only when it lies on a bound of the other
// box.
func (b Box2[T]) Touch(o Box2[T]) bool {
	if b.Intersect(o).IsEmpty() {
		return false
	}
	return sharedBound(b.Min.X, b.Max.X, o.Min.X, o.Max.X) ||
		sharedBound(b.Min.Y, b.Max.Y, o.Min.Y, o.Max.Y)
}

// Extend returns the smallest box containing b and p.
func (b Box2[T]) Extend(p Point2[T]) Box2[T] {
	if b.IsEmpty() {
		return Box2[T]{Min: p, Max: p}
	}
	return Box2[T]{
		Min: P2(min(b.Min.X, p.X), min(b.Min.Y, p.Y)),
		Max: P2(max(b.Max.X, p.X), max(b.Max.Y, p.Y)),
	}
}

// Inflate grows the box by d on every side. A negative d shrinks it, down
// to the empty box.
func (b Box2[T]) Inflate(d T) Box2[T] {
	if b.IsEmpty() {
		return b
	}
	f := float64(d)
	r := Box2[T]{
		Min: P2(shift(b.Min.X, -f), shift(b.Min.Y, -f)),
		Max: P2(shift(b.Max.X, f), shift(b.Max.Y, f)),
	}
	if r.IsEmpty() {
		return EmptyBox2[T]()
	}
	return r
}

// Translate moves the box by v.
func (b Box2[T]) Translate(v Vector2[T]) Box2[T] {
	if b.IsEmpty() {
		return b
	}
	x, y := float64(v.X), float64(v.Y)
	return Box2[T]{
		Min: P2(shift(b.Min.X, x), shift(b.Min.Y, y)),
		Max: P2(shift(b.Max.X, x), shift(b.Max.Y, y)),
	}
}

// Hash returns a deterministic hash of both corners.
func (b Box2[T]) Hash() uint64 {
	return hashPair(b.Min.Components(), b.Max.Components())
}

func (b Box2[T]) String() string {
	if b.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("[%v; %v]", b.Min, b.Max)
}

// R2Box returns the box as a gonum r2.Box.
func (b Box2[T]) R2Box() r2.Box {
	return r2.Box{Min: b.Min.R2(), Max: b.Max.R2()}
}

// BoundingBox2FromR2 converts a gonum box, saturating at the range of T.
// Inverted boxes convert to the empty box.
func BoundingBox2FromR2[T Coordinate](b r2.Box) Box2[T] {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y {
		return EmptyBox2[T]()
	}
	return NewBox2(
		P2(saturate[T](b.Min.X), saturate[T](b.Min.Y)),
		P2(saturate[T](b.Max.X), saturate[T](b.Max.Y)),
	)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Box2[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeCorners(enc, b.Min.Components(), b.Max.Components())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Box2[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	lo, hi, err := decodeCorners(dec, b.Min.Shape())
	if err != nil {
		return err
	}
	b.Min, b.Max = point2From[T](lo), point2From[T](hi)
	return nil
}

// EmptyBox3 returns the empty box.
func EmptyBox3[T Coordinate]() Box3[T] {
	lo, hi := kindRange[T]()
	return Box3[T]{Min: P3(hi, hi, hi), Max: P3(lo, lo, lo)}
}

// InfiniteBox3 returns the box covering the whole range of T.
func InfiniteBox3[T Coordinate]() Box3[T] {
	lo, hi := kindRange[T]()
	return Box3[T]{Min: P3(lo, lo, lo), Max: P3(hi, hi, hi)}
}

// NewBox3 returns the smallest box containing a and b.
func NewBox3[T Coordinate](a, b Point3[T]) Box3[T] {
	return Box3[T]{
		Min: P3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max: P3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
	}
}

// Box3FromPoints returns the smallest box containing every point.
func Box3FromPoints[T Coordinate](pts ...Point3[T]) Box3[T] {
	b := EmptyBox3[T]()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

func (b Box3[T]) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b Box3[T]) Width() T {
	if b.IsEmpty() {
		return 0
	}
	return extent(b.Min.X, b.Max.X)
}

func (b Box3[T]) Height() T {
	if b.IsEmpty() {
		return 0
	}
	return extent(b.Min.Y, b.Max.Y)
}

func (b Box3[T]) Depth() T {
	if b.IsEmpty() {
		return 0
	}
	return extent(b.Min.Z, b.Max.Z)
}

func (b Box3[T]) Size() Vector3[T] {
	return V3(b.Width(), b.Height(), b.Depth())
}

func (b Box3[T]) Center() Point3[T] {
	if b.IsEmpty() {
		return Point3[T]{}
	}
	return P3(midpoint(b.Min.X, b.Max.X), midpoint(b.Min.Y, b.Max.Y), midpoint(b.Min.Z, b.Max.Z))
}

func (b Box3[T]) Union(o Box3[T]) Box3[T] {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return Box3[T]{
		Min: P3(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: P3(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

func (b Box3[T]) Intersect(o Box3[T]) Box3[T] {
	r := Box3[T]{
		Min: P3(max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y), max(b.Min.Z, o.Min.Z)),
		Max: P3(min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y), min(b.Max.Z, o.Max.Z)),
	}
	if r.IsEmpty() {
		return EmptyBox3[T]()
	}
	return r
}

func (b Box3[T]) Contains(o Box3[T]) bool {
	if o.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Min.X && b.Min.Y <= o.Min.Y && b.Min.Z <= o.Min.Z &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y && o.Max.Z <= b.Max.Z
}

func (b Box3[T]) ContainsPoint(p Point3[T]) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

func (b Box3[T]) IntersectsWith(o Box3[T]) bool {
	return !b.Intersect(o).IsEmpty()
}

// Touch reports whether the boxes share boundary points but no interior.
func (b Box3[T]) Touch(o Box3[T]) bool {
	if b.Intersect(o).IsEmpty() {
		return false
	}
	return sharedBound(b.Min.X, b.Max.X, o.Min.X, o.Max.X) ||
		sharedBound(b.Min.Y, b.Max.Y, o.Min.Y, o.Max.Y) ||
		sharedBound(b.Min.Z, b.Max.Z, o.Min.Z, o.Max.Z)
}

func (b Box3[T]) Extend(p Point3[T]) Box3[T] {
	if b.IsEmpty() {
		return Box3[T]{Min: p, Max: p}
	}
	return Box3[T]{
		Min: P3(min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)),
		Max: P3(max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)),
	}
}

func (b Box3[T]) Inflate(d T) Box3[T] {
	if b.IsEmpty() {
		return b
	}
	f := float64(d)
	r := Box3[T]{
		Min: P3(shift(b.Min.X, -f), shift(b.Min.Y, -f), shift(b.Min.Z, -f)),
		Max: P3(shift(b.Max.X, f), shift(b.Max.Y, f), shift(b.Max.Z, f)),
	}
	if r.IsEmpty() {
		return EmptyBox3[T]()
	}
	return r
}

func (b Box3[T]) Translate(v Vector3[T]) Box3[T] {
	if b.IsEmpty() {
		return b
	}
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return Box3[T]{
		Min: P3(shift(b.Min.X, x), shift(b.Min.Y, y), shift(b.Min.Z, z)),
		Max: P3(shift(b.Max.X, x), shift(b.Max.Y, y), shift(b.Max.Z, z)),
	}
}

func (b Box3[T]) Hash() uint64 {
	return hashPair(b.Min.Components(), b.Max.Components())
}

func (b Box3[T]) String() string {
	if b.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("[%v; %v]", b.Min, b.Max)
}

// R3Box returns the box as a gonum r3.Box.
func (b Box3[T]) R3Box() r3.Box {
	return r3.Box{Min: b.Min.R3(), Max: b.Max.R3()}
}

// BoundingBox3FromR3 converts a gonum box, saturating at the range of T.
func BoundingBox3FromR3[T Coordinate](b r3.Box) Box3[T] {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return EmptyBox3[T]()
	}
	return NewBox3(
		P3(saturate[T](b.Min.X), saturate[T](b.Min.Y), saturate[T](b.Min.Z)),
		P3(saturate[T](b.Max.X), saturate[T](b.Max.Y), saturate[T](b.Max.Z)),
	)
}

func (b Box3[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeCorners(enc, b.Min.Components(), b.Max.Components())
}

func (b *Box3[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	lo, hi, err := decodeCorners(dec, b.Min.Shape())
	if err != nil {
		return err
	}
	b.Min, b.Max = point3From[T](lo), point3From[T](hi)
	return nil
}
