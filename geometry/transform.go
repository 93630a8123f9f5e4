package geometry

import "github.com/spaghettifunk/geom3/scalar"

// Transform constructors. All of them follow the row-vector convention
// used by MulPoint: the translation lives in row 3, so transforming a
// point is p * M, and chaining is left-to-right (model * view * proj).

// NewMat4Translation returns a matrix translating points by position.
func NewMat4Translation[T scalar.Float](position Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.M[3][0] = position.X
	out.M[3][1] = position.Y
	out.M[3][2] = position.Z
	return out
}

// NewMat4Scale returns a matrix scaling each axis by the corresponding
// component of s.
func NewMat4Scale[T scalar.Float](s Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.M[0][0] = s.X
	out.M[1][1] = s.Y
	out.M[2][2] = s.Z
	return out
}

// NewMat4EulerX returns a rotation about the x axis by angle radians.
func NewMat4EulerX[T scalar.Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := scalar.Cos(angleRadians)
	s := scalar.Sin(angleRadians)
	out.M[1][1] = c
	out.M[1][2] = s
	out.M[2][1] = -s
	out.M[2][2] = c
	return out
}

// NewMat4EulerY returns a rotation about the y axis by angle radians.
func NewMat4EulerY[T scalar.Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := scalar.Cos(angleRadians)
	s := scalar.Sin(angleRadians)
	out.M[0][0] = c
	out.M[0][2] = -s
	out.M[2][0] = s
	out.M[2][2] = c
	return out
}

// NewMat4EulerZ returns a rotation about the z axis by angle radians.
func NewMat4EulerZ[T scalar.Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := scalar.Cos(angleRadians)
	s := scalar.Sin(angleRadians)
	out.M[0][0] = c
	out.M[0][1] = s
	out.M[1][0] = -s
	out.M[1][1] = c
	return out
}

// NewMat4EulerXYZ returns the combined rotation Rx * Ry * Rz.
func NewMat4EulerXYZ[T scalar.Float](xRadians, yRadians, zRadians T) Mat4[T] {
	rx := NewMat4EulerX(xRadians)
	ry := NewMat4EulerY(yRadians)
	rz := NewMat4EulerZ(zRadians)
	return rx.Mul(ry).Mul(rz)
}

// NewMat4LookAt returns a view matrix looking at target from position,
// with up defining the vertical.
func NewMat4LookAt[T scalar.Float](position Point3[T], target Point3[T], up Vec3[T]) Mat4[T] {
	zAxis := target.Sub(position)
	zAxis.Normalize()
	xAxis := up.Cross(zAxis)
	xAxis.Normalize()
	yAxis := zAxis.Cross(xAxis)

	pos := position.AsVec3()
	out := Mat4[T]{}
	out.M[0] = [4]T{xAxis.X, yAxis.X, -zAxis.X, 0}
	out.M[1] = [4]T{xAxis.Y, yAxis.Y, -zAxis.Y, 0}
	out.M[2] = [4]T{xAxis.Z, yAxis.Z, -zAxis.Z, 0}
	out.M[3] = [4]T{-xAxis.Dot(pos), -yAxis.Dot(pos), zAxis.Dot(pos), 1}
	return out
}

// NewMat4Perspective returns a perspective projection matrix.
func NewMat4Perspective[T scalar.Float](fovRadians, aspectRatio, nearClip, farClip T) Mat4[T] {
	halfTanFov := scalar.Tan(fovRadians * 0.5)
	out := Mat4[T]{}
	out.M[0][0] = 1 / (aspectRatio * halfTanFov)
	out.M[1][1] = 1 / halfTanFov
	out.M[2][2] = -((farClip + nearClip) / (farClip - nearClip))
	out.M[2][3] = -1
	out.M[3][2] = -((2 * farClip * nearClip) / (farClip - nearClip))
	return out
}

// NewMat4Orthographic returns an orthographic projection matrix,
// typically used to render flat or 2D scenes.
func NewMat4Orthographic[T scalar.Float](left, right, bottom, top, nearClip, farClip T) Mat4[T] {
	out := NewMat4Identity[T]()

	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (nearClip - farClip)

	out.M[0][0] = -2 * lr
	out.M[1][1] = -2 * bt
	out.M[2][2] = 2 * nf
	out.M[3][0] = (left + right) * lr
	out.M[3][1] = (top + bottom) * bt
	out.M[3][2] = (farClip + nearClip) * nf
	return out
}

// Forward returns the normalized forward direction of the transform.
func (mt Mat4[T]) Forward() Vec3[T] {
	v := Vec3[T]{-mt.M[0][2], -mt.M[1][2], -mt.M[2][2]}
	v.Normalize()
	return v
}

// Backward returns the normalized backward direction of the transform.
func (mt Mat4[T]) Backward() Vec3[T] {
	v := Vec3[T]{mt.M[0][2], mt.M[1][2], mt.M[2][2]}
	v.Normalize()
	return v
}

// Up returns the normalized up direction of the transform.
func (mt Mat4[T]) Up() Vec3[T] {
	v := Vec3[T]{mt.M[0][1], mt.M[1][1], mt.M[2][1]}
	v.Normalize()
	return v
}

// Down returns the normalized down direction of the transform.
func (mt Mat4[T]) Down() Vec3[T] {
	v := Vec3[T]{-mt.M[0][1], -mt.M[1][1], -mt.M[2][1]}
	v.Normalize()
	return v
}

// Left returns the normalized left direction of the transform.
func (mt Mat4[T]) Left() Vec3[T] {
	v := Vec3[T]{-mt.M[0][0], -mt.M[1][0], -mt.M[2][0]}
	v.Normalize()
	return v
}

// Right returns the normalized right direction of the transform.
func (mt Mat4[T]) Right() Vec3[T] {
	v := Vec3[T]{mt.M[0][0], mt.M[1][0], mt.M[2][0]}
	v.Normalize()
	return v
}
