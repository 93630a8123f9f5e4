// Package scalar defines the numeric capability every geometry type is
// parameterized over, plus the small set of generic helpers the rest of
// the library needs so that callers never have to care whether they
// instantiated it with float32 or float64.
package scalar

import (
	m "math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar contract: any single- or double-precision
// floating-point type (including named types defined over them).
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of x in the precision of T.
func Sqrt[T Float](x T) T {
	return T(m.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Epsilon returns the machine epsilon for T: the smallest positive
// value e where 1+e != 1 in T's precision. Thresholds derived from it
// stay meaningful for both float32 and float64 instantiations.
func Epsilon[T Float]() T {
	// Width, not dynamic type: named types over float32 must get the
	// float32 epsilon too.
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(1.192092896e-07)
	}
	return T(2.220446049250313e-16)
}

// Sin returns the sine of x (in radians) in the precision of T.
func Sin[T Float](x T) T {
	return T(m.Sin(float64(x)))
}

// Cos returns the cosine of x (in radians) in the precision of T.
func Cos[T Float](x T) T {
	return T(m.Cos(float64(x)))
}

// Tan returns the tangent of x (in radians) in the precision of T.
func Tan[T Float](x T) T {
	return T(m.Tan(float64(x)))
}

// Compare reports whether a and b differ by no more than tolerance.
func Compare[T Float](a, b, tolerance T) bool {
	return Abs(a-b) <= tolerance
}

// Min returns the smaller of x and y.
func Min[T Float](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}
