package geometry

import "github.com/spaghettifunk/geom3/scalar"

// NewVec3 creates a vector from the supplied components. Values are
// taken as-is; NaN and Inf propagate per IEEE semantics.
func NewVec3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// NewVec3Zero returns the zero vector.
func NewVec3Zero[T scalar.Float]() Vec3[T] {
	return Vec3[T]{}
}

// NewVec3One returns a vector with all components set to 1.
func NewVec3One[T scalar.Float]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

// NewVec3Up returns (0, 1, 0).
func NewVec3Up[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

// NewVec3Down returns (0, -1, 0).
func NewVec3Down[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, -1, 0}
}

// NewVec3Left returns (-1, 0, 0).
func NewVec3Left[T scalar.Float]() Vec3[T] {
	return Vec3[T]{-1, 0, 0}
}

// NewVec3Right returns (1, 0, 0).
func NewVec3Right[T scalar.Float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

// NewVec3Forward returns (0, 0, -1).
func NewVec3Forward[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, 0, -1}
}

// NewVec3Back returns (0, 0, 1).
func NewVec3Back[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

// At returns component i (0=x, 1=y, 2=z). Any other index panics.
func (v *Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geometry: Vec3 index out of range")
}

// Set assigns component i (0=x, 1=y, 2=z). Any other index panics.
func (v *Vec3[T]) Set(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic("geometry: Vec3 index out of range")
	}
}

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Negated returns -v.
func (v Vec3[T]) Negated() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and other. Commutative.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of v and other. It is
// anti-commutative (a.Cross(b) == b.Cross(a).Negated()) and zero when
// the operands are parallel, up to floating rounding.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared length of v.
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length (magnitude) of v. Non-negative for any
// finite non-NaN input, and zero only for the zero vector.
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.LengthSquared())
}

// Distance returns the distance between v and other.
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

// Normalize scales v in place to unit length. A vector of exactly zero
// length is left unchanged: this is a deliberate no-op, not an error,
// so that degenerate inputs never divide by zero.
func (v *Vec3[T]) Normalize() {
	length := v.Length()
	if length > 0 {
		inv := 1 / length
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	}
}

// Normalized returns a unit-length copy of v, with the same zero-length
// no-op policy as Normalize.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Compare reports whether every component of v and other differs by no
// more than tolerance. Typically scalar.Epsilon or similar.
func (v Vec3[T]) Compare(other Vec3[T], tolerance T) bool {
	if scalar.Abs(v.X-other.X) > tolerance {
		return false
	}
	if scalar.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if scalar.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// AsPoint3 reinterprets v as the point v away from the origin.
func (v Vec3[T]) AsPoint3() Point3[T] {
	return Point3[T]{v.X, v.Y, v.Z}
}
