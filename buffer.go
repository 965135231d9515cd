package essence

// Buffer2 is a mutable 2D accumulator for hot loops.
//
// It follows the arithmetic of Vector2 but updates in place. A Buffer2 is
// owned by one goroutine; concurrent mutation of the same buffer is a data
// race. Take immutable snapshots with Vector or Point.
type Buffer2[T Scalar] struct {
	X, Y T
}

// NewBuffer2 returns a buffer holding the components of t.
func NewBuffer2[T Scalar](t Tuple2Of[T]) *Buffer2[T] {
	x, y := t.XY()
	return &Buffer2[T]{X: x, Y: y}
}

// Set replaces both components.
func (b *Buffer2[T]) Set(x, y T) *Buffer2[T] {
	b.X, b.Y = x, y
	return b
}

// Add adds v in place.
func (b *Buffer2[T]) Add(v Vector2[T]) *Buffer2[T] {
	b.X += v.X
	b.Y += v.Y
	return b
}

// Sub subtracts v in place.
func (b *Buffer2[T]) Sub(v Vector2[T]) *Buffer2[T] {
	b.X -= v.X
	b.Y -= v.Y
	return b
}

// Scale multiplies both components by f in place.
func (b *Buffer2[T]) Scale(f float64) *Buffer2[T] {
	b.X = fromFloat[T](float64(b.X) * f)
	b.Y = fromFloat[T](float64(b.Y) * f)
	return b
}

// Reset zeroes the buffer.
func (b *Buffer2[T]) Reset() *Buffer2[T] {
	*b = Buffer2[T]{}
	return b
}

// Vector returns a snapshot as a vector.
func (b *Buffer2[T]) Vector() Vector2[T] { return Vector2[T]{X: b.X, Y: b.Y} }

// Point returns a snapshot as a point.
func (b *Buffer2[T]) Point() Point2[T] { return Point2[T]{X: b.X, Y: b.Y} }

// Buffer3 is the 3D counterpart of Buffer2, with the same single-owner
// contract.
type Buffer3[T Scalar] struct {
	X, Y, Z T
}

// NewBuffer3 returns a buffer holding the components of t.
func NewBuffer3[T Scalar](t Tuple3Of[T]) *Buffer3[T] {
	x, y, z := t.XYZ()
	return &Buffer3[T]{X: x, Y: y, Z: z}
}

func (b *Buffer3[T]) Set(x, y, z T) *Buffer3[T] {
	b.X, b.Y, b.Z = x, y, z
	return b
}

func (b *Buffer3[T]) Add(v Vector3[T]) *Buffer3[T] {
	b.X += v.X
	b.Y += v.Y
	b.Z += v.Z
	return b
}

func (b *Buffer3[T]) Sub(v Vector3[T]) *Buffer3[T] {
	b.X -= v.X
	b.Y -= v.Y
	b.Z -= v.Z
	return b
}

func (b *Buffer3[T]) Scale(f float64) *Buffer3[T] {
	b.X = fromFloat[T](float64(b.X) * f)
	b.Y = fromFloat[T](float64(b.Y) * f)
	b.Z = fromFloat[T](float64(b.Z) * f)
	return b
}

func (b *Buffer3[T]) Reset() *Buffer3[T] {
	*b = Buffer3[T]{}
	return b
}

// Vector returns a snapshot as a vector.
func (b *Buffer3[T]) Vector() Vector3[T] { return Vector3[T]{X: b.X, Y: b.Y, Z: b.Z} }

// Point returns a snapshot as a point.
func (b *Buffer3[T]) Point() Point3[T] { return Point3[T]{X: b.X, Y: b.Y, Z: b.Z} }
