package math3d

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix stored as three column vectors.
//
// Element layout:
// | m[0].X m[1].X m[2].X |
// | m[0].Y m[1].Y m[2].Y |
// | m[0].Z m[1].Z m[2].Z |
//
// The zero value is the zero matrix.
type Mat3 [3]Vec3

// NewMat3 builds a matrix from nine scalars given row by row.
func NewMat3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) Mat3 {
	return Mat3{
		{m00, m10, m20},
		{m01, m11, m21},
		{m02, m12, m22},
	}
}

// Mat3FromCols builds a matrix from its columns.
func Mat3FromCols(a, b, c Vec3) Mat3 {
	return Mat3{a, b, c}
}

// Mat3FromRows builds a matrix from its rows.
func Mat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return NewMat3(
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	)
}

// Mat3FromArray builds a matrix from column-major arrays.
func Mat3FromArray(a [3][3]float32) Mat3 {
	return Mat3{Vec3FromArray(a[0]), Vec3FromArray(a[1]), Vec3FromArray(a[2])}
}

// IdentityMat3 returns the identity matrix.
func IdentityMat3() Mat3 {
	return Mat3FromDiagonal(Vec3{1, 1, 1})
}

// Mat3FromDiagonal returns the matrix with d on the diagonal and zeros elsewhere.
func Mat3FromDiagonal(d Vec3) Mat3 {
	return NewMat3(
		d.X, 0, 0,
		0, d.Y, 0,
		0, 0, d.Z,
	)
}

// Mat3RotateX returns a rotation by t radians about the X axis.
func Mat3RotateX(t float32) Mat3 {
	s, c := math32.Sincos(t)
	return NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// Mat3RotateY returns a rotation by t radians about the Y axis.
func Mat3RotateY(t float32) Mat3 {
	s, c := math32.Sincos(t)
	return NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// Mat3RotateZ returns a rotation by t radians about the Z axis.
func Mat3RotateZ(t float32) Mat3 {
	s, c := math32.Sincos(t)
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Mat3Rotate returns a rotation by t radians about axis a.
// a must already be unit length; it is not checked.
func Mat3Rotate(a Vec3, t float32) Mat3 {
	s, c := math32.Sincos(t)
	d := a.Scale(1 - c)
	dxy := d.X * a.Y
	dxz := d.X * a.Z
	dyz := d.Y * a.Z
	return NewMat3(
		c+d.X*a.X, dxy-s*a.Z, dxz+s*a.Y,
		dxy+s*a.Z, c+d.Y*a.Y, dyz-s*a.X,
		dxz-s*a.Y, dyz+s*a.X, c+d.Z*a.Z,
	)
}

// Mat3Reflection returns the Householder reflection I - 2aaᵀ through the
// plane perpendicular to unit vector a.
func Mat3Reflection(a Vec3) Mat3 {
	d := a.Scale(-2)
	dxy := d.X * a.Y
	dxz := d.X * a.Z
	dyz := d.Y * a.Z
	return NewMat3(
		1+d.X*a.X, dxy, dxz,
		dxy, 1+d.Y*a.Y, dyz,
		dxz, dyz, 1+d.Z*a.Z,
	)
}

// Mat3Involution returns 2aaᵀ - I, the half-turn about unit vector a.
func Mat3Involution(a Vec3) Mat3 {
	d := a.Scale(2)
	dxy := d.X * a.Y
	dxz := d.X * a.Z
	dyz := d.Y * a.Z
	return NewMat3(
		d.X*a.X-1, dxy, dxz,
		dxy, d.Y*a.Y-1, dyz,
		dxz, dyz, d.Z*a.Z-1,
	)
}

// Mat3Scale returns a matrix scaling each axis by the matching component of s.
func Mat3Scale(s Vec3) Mat3 {
	return Mat3FromDiagonal(s)
}

// Mat3ScaleAlong returns a matrix scaling by s along unit axis a only.
func Mat3ScaleAlong(s float32, a Vec3) Mat3 {
	d := a.Scale(s - 1)
	dxy := d.X * a.Y
	dxz := d.X * a.Z
	dyz := d.Y * a.Z
	return NewMat3(
		d.X*a.X+1, dxy, dxz,
		dxy, d.Y*a.Y+1, dyz,
		dxz, dyz, d.Z*a.Z+1,
	)
}

// Array returns the matrix as column-major arrays.
func (m Mat3) Array() [3][3]float32 {
	return [3][3]float32{m[0].Array(), m[1].Array(), m[2].Array()}
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return m[i]
}

// Row returns row i. It panics for i outside [0, 2].
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[0].Index(i), m[1].Index(i), m[2].Index(i)}
}

// At returns the element at (row, col).
func (m Mat3) At(row, col int) float32 {
	return m[col].Index(row)
}

// Set sets the element at (row, col).
func (m *Mat3) Set(row, col int, v float32) {
	m[col].SetIndex(row, v)
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3FromRows(m[0], m[1], m[2])
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float32 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) +
		m.At(0, 1)*(m.At(1, 2)*m.At(2, 0)-m.At(1, 0)*m.At(2, 2)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}

// Invert returns the inverse of the matrix. It reports false when the
// determinant is exactly zero.
func (m Mat3) Invert() (Mat3, bool) {
	a, b, c := m[0], m[1], m[2]

	r0 := b.Cross(c)
	r1 := c.Cross(a)
	r2 := a.Cross(b)

	det := r2.Dot(c)
	if det == 0 {
		return Mat3{}, false
	}

	invDet := 1 / det
	return Mat3FromRows(r0.Scale(invDet), r1.Scale(invDet), r2.Scale(invDet)), true
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	return Mat3{a.MulVec(b[0]), a.MulVec(b[1]), a.MulVec(b[2])}
}

// MulVec transforms v: each result component is v dotted with a row of m.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{v.Dot(m.Row(0)), v.Dot(m.Row(1)), v.Dot(m.Row(2))}
}

// Add returns the element-wise sum.
func (a Mat3) Add(b Mat3) Mat3 {
	return Mat3{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

// Sub returns the element-wise difference.
func (a Mat3) Sub(b Mat3) Mat3 {
	return Mat3{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Div divides every element by s.
func (m Mat3) Div(s float32) Mat3 {
	return m.Scale(1 / s)
}

// Negate returns -m.
func (m Mat3) Negate() Mat3 {
	return Mat3{m[0].Negate(), m[1].Negate(), m[2].Negate()}
}
