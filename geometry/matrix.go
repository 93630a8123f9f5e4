package geometry

import (
	"errors"

	"github.com/spaghettifunk/geom3/scalar"
)

// ErrSingularMatrix is returned by Inverse and Invert when the matrix
// has no inverse: its determinant is zero or negligible relative to the
// magnitude of its entries.
var ErrSingularMatrix = errors.New("geometry: singular matrix")

// NewMat4 creates a matrix from 16 scalars in row-major order.
func NewMat4[T scalar.Float](
	a, b, c, d,
	e, f, g, h,
	i, j, k, l,
	m, n, o, p T,
) Mat4[T] {
	return Mat4[T]{M: [4][4]T{
		{a, b, c, d},
		{e, f, g, h},
		{i, j, k, l},
		{m, n, o, p},
	}}
}

// NewMat4Zero returns the all-zero matrix.
func NewMat4Zero[T scalar.Float]() Mat4[T] {
	return Mat4[T]{}
}

// NewMat4Identity returns the identity matrix.
func NewMat4Identity[T scalar.Float]() Mat4[T] {
	out := Mat4[T]{}
	out.M[0][0] = 1
	out.M[1][1] = 1
	out.M[2][2] = 1
	out.M[3][3] = 1
	return out
}

// Row returns row i. Any index outside 0..3 panics.
func (mt *Mat4[T]) Row(i int) [4]T {
	if i < 0 || i > 3 {
		panic("geometry: Mat4 row index out of range")
	}
	return mt.M[i]
}

// At returns element (i, j). Any index outside 0..3 panics.
func (mt *Mat4[T]) At(i, j int) T {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		panic("geometry: Mat4 index out of range")
	}
	return mt.M[i][j]
}

// SetAt assigns element (i, j). Any index outside 0..3 panics.
func (mt *Mat4[T]) SetAt(i, j int, v T) {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		panic("geometry: Mat4 index out of range")
	}
	mt.M[i][j] = v
}

// Mul returns the matrix product mt * other. Not commutative.
func (mt Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	out := Mat4[T]{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum T
			for i := 0; i < 4; i++ {
				sum += mt.M[row][i] * other.M[i][col]
			}
			out.M[row][col] = sum
		}
	}
	return out
}

// Transpose swaps rows and columns in place.
func (mt *Mat4[T]) Transpose() {
	*mt = mt.Transposed()
}

// Transposed returns a transposed copy of mt. Transposing twice yields
// the original matrix exactly.
func (mt Mat4[T]) Transposed() Mat4[T] {
	out := Mat4[T]{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.M[i][j] = mt.M[j][i]
		}
	}
	return out
}

// Compare reports whether every element of mt and other differs by no
// more than tolerance.
func (mt Mat4[T]) Compare(other Mat4[T], tolerance T) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if scalar.Abs(mt.M[i][j]-other.M[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

// flat returns the elements in row-major order, the layout the cofactor
// expansion below is written against.
func (mt *Mat4[T]) flat() [16]T {
	var m [16]T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i*4+j] = mt.M[i][j]
		}
	}
	return m
}

// maxAbs returns the largest absolute element, the scale the singular
// threshold is relative to.
func (mt *Mat4[T]) maxAbs() T {
	var max T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			max = scalar.Max(max, scalar.Abs(mt.M[i][j]))
		}
	}
	return max
}

// Determinant returns the determinant of mt.
func (mt Mat4[T]) Determinant() T {
	m := mt.flat()
	o0, o1, o2, o3 := cofactorRow0(m)
	return m[0]*o0 + m[4]*o1 + m[8]*o2 + m[12]*o3
}

func cofactorRow0[T scalar.Float](m [16]T) (o0, o1, o2, o3 T) {
	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]

	o0 = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o1 = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o2 = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o3 = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])
	return o0, o1, o2, o3
}

// Inverse returns the inverse of mt, computed by cofactor expansion.
// A singular or numerically near-singular matrix yields
// ErrSingularMatrix instead of a garbage result: the determinant is
// tested against a threshold scaled by the fourth power of the largest
// element, so the test stays meaningful for both float32 and float64
// and for matrices far from unit scale.
func (mt Mat4[T]) Inverse() (Mat4[T], error) {
	m := mt.flat()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]T
	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3]

	scale := mt.maxAbs()
	threshold := scalar.Epsilon[T]() * scale * scale * scale * scale
	if scalar.Abs(det) <= threshold {
		return Mat4[T]{}, ErrSingularMatrix
	}
	d := 1 / det

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	out := Mat4[T]{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.M[i][j] = o[i*4+j]
		}
	}
	return out, nil
}

// Invert replaces mt with its inverse in place. On ErrSingularMatrix
// the receiver is left unchanged.
func (mt *Mat4[T]) Invert() error {
	inv, err := mt.Inverse()
	if err != nil {
		return err
	}
	*mt = inv
	return nil
}

// MulPoint transforms p by m using homogeneous coordinates: the point
// is extended with w=1, multiplied through the full 4x4 matrix with the
// translation row applied, and the result divided by the transformed w.
// A zero or near-zero w is not guarded; the division produces Inf/NaN
// per the scalar's floating semantics, which callers transforming by
// degenerate projective matrices accept.
func MulPoint[T scalar.Float](p Point3[T], m Mat4[T]) Point3[T] {
	x := p.X*m.M[0][0] + p.Y*m.M[1][0] + p.Z*m.M[2][0] + m.M[3][0]
	y := p.X*m.M[0][1] + p.Y*m.M[1][1] + p.Z*m.M[2][1] + m.M[3][1]
	z := p.X*m.M[0][2] + p.Y*m.M[1][2] + p.Z*m.M[2][2] + m.M[3][2]
	w := p.X*m.M[0][3] + p.Y*m.M[1][3] + p.Z*m.M[2][3] + m.M[3][3]

	return Point3[T]{x / w, y / w, z / w}
}

// MulVec3 transforms the direction v by the linear 3x3 part of m. The
// translation row is ignored and no w divide happens, since directions
// are invariant to translation.
func MulVec3[T scalar.Float](v Vec3[T], m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0],
		v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1],
		v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2],
	}
}
