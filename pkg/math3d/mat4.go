package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored as four column vectors.
// This matches OpenGL conventions for easier reasoning about transforms.
//
// Flat (column-major) indices:
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// The last row is not constrained; use Transform4 for affine maps.
type Mat4 [4]Vec4

// NewMat4 builds a matrix from sixteen scalars given row by row.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4 {
	return Mat4{
		{m00, m10, m20, m30},
		{m01, m11, m21, m31},
		{m02, m12, m22, m32},
		{m03, m13, m23, m33},
	}
}

// Mat4FromCols builds a matrix from its columns.
func Mat4FromCols(a, b, c, d Vec4) Mat4 {
	return Mat4{a, b, c, d}
}

// Mat4FromRows builds a matrix from its rows.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return NewMat4(
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	)
}

// Mat4FromArray builds a matrix from column-major arrays.
func Mat4FromArray(a [4][4]float32) Mat4 {
	return Mat4{
		Vec4FromArray(a[0]),
		Vec4FromArray(a[1]),
		Vec4FromArray(a[2]),
		Vec4FromArray(a[3]),
	}
}

func mat4FromFlat(e [16]float32) Mat4 {
	return Mat4{
		{e[0], e[1], e[2], e[3]},
		{e[4], e[5], e[6], e[7]},
		{e[8], e[9], e[10], e[11]},
		{e[12], e[13], e[14], e[15]},
	}
}

// flat returns the elements in column-major order.
func (m Mat4) flat() [16]float32 {
	return [16]float32{
		m[0].X, m[0].Y, m[0].Z, m[0].W,
		m[1].X, m[1].Y, m[1].Z, m[1].W,
		m[2].X, m[2].Y, m[2].Z, m[2].W,
		m[3].X, m[3].Y, m[3].Z, m[3].W,
	}
}

// IdentityMat4 returns the identity matrix.
func IdentityMat4() Mat4 {
	return Mat4FromDiagonal(Vec4{1, 1, 1, 1})
}

// Mat4FromDiagonal returns the matrix with d on the diagonal and zeros elsewhere.
func Mat4FromDiagonal(d Vec4) Mat4 {
	return Mat4{
		{d.X, 0, 0, 0},
		{0, d.Y, 0, 0},
		{0, 0, d.Z, 0},
		{0, 0, 0, d.W},
	}
}

// LookAt creates a view matrix looking from eye towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize() // Forward
	s := f.Cross(up).Normalize()     // Right
	u := s.Cross(f)                  // Up (recomputed)

	return mat4FromFlat([16]float32{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	})
}

// Perspective creates a perspective projection matrix.
// fovy is vertical field of view in radians.
// aspect is width/height.
// near and far are clipping planes.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)

	return mat4FromFlat([16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	})
}

// Orthographic creates an orthographic projection matrix.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return mat4FromFlat([16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	})
}

// Array returns the matrix as column-major arrays.
func (m Mat4) Array() [4][4]float32 {
	return [4][4]float32{m[0].Array(), m[1].Array(), m[2].Array(), m[3].Array()}
}

// Col returns column i.
func (m Mat4) Col(i int) Vec4 {
	return m[i]
}

// Row returns row i. It panics for i outside [0, 3].
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[0].Index(i), m[1].Index(i), m[2].Index(i), m[3].Index(i)}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[col].Index(row)
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, v float32) {
	m[col].SetIndex(row, v)
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4FromRows(m[0], m[1], m[2], m[3])
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	return Mat4{a.MulVec(b[0]), a.MulVec(b[1]), a.MulVec(b[2]), a.MulVec(b[3])}
}

// MulVec transforms a Vec4: each result component is v dotted with a row of m.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{v.Dot(m.Row(0)), v.Dot(m.Row(1)), v.Dot(m.Row(2)), v.Dot(m.Row(3))}
}

// MulVec3 transforms a Vec3 as a point (w=1) and divides by the resulting w.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	r := m.MulVec(v.Extend(1))
	if r.W == 0 {
		r.W = 1
	}
	return r.XYZ().Div(r.W)
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return m.MulVec(v.Extend(0)).XYZ()
}

// Determinant returns the determinant of the matrix by cofactor expansion
// along the first column.
func (m Mat4) Determinant() float32 {
	e := m.flat()
	return e[0]*(e[5]*(e[10]*e[15]-e[14]*e[11])-e[9]*(e[6]*e[15]-e[14]*e[7])+e[13]*(e[6]*e[11]-e[10]*e[7])) -
		e[4]*(e[1]*(e[10]*e[15]-e[14]*e[11])-e[9]*(e[2]*e[15]-e[14]*e[3])+e[13]*(e[2]*e[11]-e[10]*e[3])) +
		e[8]*(e[1]*(e[6]*e[15]-e[14]*e[7])-e[5]*(e[2]*e[15]-e[14]*e[3])+e[13]*(e[2]*e[7]-e[6]*e[3])) -
		e[12]*(e[1]*(e[6]*e[11]-e[10]*e[7])-e[5]*(e[2]*e[11]-e[10]*e[3])+e[9]*(e[2]*e[7]-e[6]*e[3]))
}

// Invert returns the inverse of the matrix, or false when the determinant is
// exactly zero.
//
// The matrix is split into the 3D parts a, b, c, d of its columns and the
// bottom row (x, y, z, w); the inverse rows are assembled from their cross
// products.
func (m Mat4) Invert() (Mat4, bool) {
	a, b, c, d := m[0].XYZ(), m[1].XYZ(), m[2].XYZ(), m[3].XYZ()
	x, y, z, w := m[0].W, m[1].W, m[2].W, m[3].W

	s := a.Cross(b)
	t := c.Cross(d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	det := s.Dot(v) + t.Dot(u)
	if det == 0 {
		return Mat4{}, false
	}

	invDet := 1 / det
	s = s.Scale(invDet)
	t = t.Scale(invDet)
	u = u.Scale(invDet)
	v = v.Scale(invDet)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	return Mat4FromRows(
		r0.Extend(-b.Dot(t)),
		r1.Extend(a.Dot(t)),
		r2.Extend(-d.Dot(s)),
		r3.Extend(c.Dot(s)),
	), true
}

// Add returns the element-wise sum.
func (a Mat4) Add(b Mat4) Mat4 {
	return Mat4{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2]), a[3].Add(b[3])}
}

// Sub returns the element-wise difference.
func (a Mat4) Sub(b Mat4) Mat4 {
	return Mat4{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2]), a[3].Sub(b[3])}
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return m[3].XYZ()
}
