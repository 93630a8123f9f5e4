// Package geometry implements the 3D primitives a rendering or physics
// pipeline builds on: 3-component vectors and points and 4x4
// transformation matrices, generic over the scalar precision.
//
// Vectors and points share the same three-scalar layout but are
// distinct types on purpose: a vector is a free direction with a
// magnitude, a point is a fixed location. The only mixed operations
// are the ones that mean something — point minus point is a vector,
// point plus vector is a point. There is no point-plus-point.
//
// All operations return new values except the in-place mutators
// (Normalize, Transpose, Invert); results never alias their operands.
package geometry

import "github.com/spaghettifunk/geom3/scalar"

// Vec3 is a 3D direction/magnitude vector.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// Point3 is a fixed location in 3D space.
type Point3[T scalar.Float] struct {
	X, Y, Z T
}

// Mat4 is a 4x4 row-major transformation matrix.
type Mat4[T scalar.Float] struct {
	M [4][4]T
}

// Tuple is the indexed-access contract shared by Vec3 and Point3:
// component 0 is x, 1 is y, 2 is z. Indexing outside 0..2 is a caller
// bug and panics; it is never clamped or turned into an error value.
type Tuple[T scalar.Float] interface {
	At(i int) T
	Set(i int, v T)
}

var (
	_ Tuple[float32] = (*Vec3[float32])(nil)
	_ Tuple[float64] = (*Point3[float64])(nil)
)

// Convenience aliases for the two precisions the library is normally
// instantiated with.
type (
	Vec3f   = Vec3[float32]
	Vec3d   = Vec3[float64]
	Point3f = Point3[float32]
	Point3d = Point3[float64]
	Mat4f   = Mat4[float32]
	Mat4d   = Mat4[float64]
)
