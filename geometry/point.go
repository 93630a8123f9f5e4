package geometry

import "github.com/spaghettifunk/geom3/scalar"

// NewPoint3 creates a point from the supplied coordinates.
func NewPoint3[T scalar.Float](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// NewPoint3Zero returns the origin.
func NewPoint3Zero[T scalar.Float]() Point3[T] {
	return Point3[T]{}
}

// At returns coordinate i (0=x, 1=y, 2=z). Any other index panics.
func (p *Point3[T]) At(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic("geometry: Point3 index out of range")
}

// Set assigns coordinate i (0=x, 1=y, 2=z). Any other index panics.
func (p *Point3[T]) Set(i int, val T) {
	switch i {
	case 0:
		p.X = val
	case 1:
		p.Y = val
	case 2:
		p.Z = val
	default:
		panic("geometry: Point3 index out of range")
	}
}

// Add returns the point translated by v.
func (p Point3[T]) Add(v Vec3[T]) Point3[T] {
	return Point3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement vector from other to p.
func (p Point3[T]) Sub(other Point3[T]) Vec3[T] {
	return Vec3[T]{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceFromOrigin returns the length of the vector from the origin
// to p.
func (p Point3[T]) DistanceFromOrigin() T {
	return scalar.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between p and other.
func (p Point3[T]) Distance(other Point3[T]) T {
	return p.Sub(other).Length()
}

// Normalize scales p in place so its distance from the origin is 1.
// The origin itself is left unchanged, the same zero-length no-op
// policy as Vec3.Normalize.
func (p *Point3[T]) Normalize() {
	d := p.DistanceFromOrigin()
	if d > 0 {
		inv := 1 / d
		p.X *= inv
		p.Y *= inv
		p.Z *= inv
	}
}

// Compare reports whether every coordinate of p and other differs by no
// more than tolerance.
func (p Point3[T]) Compare(other Point3[T], tolerance T) bool {
	if scalar.Abs(p.X-other.X) > tolerance {
		return false
	}
	if scalar.Abs(p.Y-other.Y) > tolerance {
		return false
	}
	if scalar.Abs(p.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// AsVec3 reinterprets p as the vector from the origin to p.
func (p Point3[T]) AsVec3() Vec3[T] {
	return Vec3[T]{p.X, p.Y, p.Z}
}
