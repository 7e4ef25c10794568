package math3d

// Transform4 is an affine transform: a 3x3 linear part plus a translation,
// read as a 4x4 matrix whose bottom row is always [0 0 0 1]. Only the first
// three rows are stored; the fourth is implied and never multiplied.
//
// t[0], t[1], t[2] are the linear columns, t[3] is the translation.
type Transform4 [4]Vec3

// NewTransform4 builds a transform from the top three rows, given row by row.
func NewTransform4(
	n00, n01, n02, n03,
	n10, n11, n12, n13,
	n20, n21, n22, n23 float32,
) Transform4 {
	return Transform4{
		{n00, n10, n20},
		{n01, n11, n21},
		{n02, n12, n22},
		{n03, n13, n23},
	}
}

// Transform4FromCols builds a transform from four 4D columns. The W
// components are ignored; the bottom row is always [0 0 0 1].
func Transform4FromCols(a, b, c, p Vec4) Transform4 {
	return Transform4{a.XYZ(), b.XYZ(), c.XYZ(), p.XYZ()}
}

// Transform4FromABCP builds a transform from three linear columns and a translation.
func Transform4FromABCP(a, b, c, p Vec3) Transform4 {
	return Transform4{a, b, c, p}
}

// Transform4FromMat3 builds a transform applying m and then translating by p.
func Transform4FromMat3(m Mat3, p Vec3) Transform4 {
	return Transform4{m[0], m[1], m[2], p}
}

// IdentityTransform4 returns the identity transform.
func IdentityTransform4() Transform4 {
	return Transform4FromDiagonal(Vec3{1, 1, 1})
}

// Transform4FromDiagonal returns a pure scale transform.
func Transform4FromDiagonal(d Vec3) Transform4 {
	return Transform4FromMat3(Mat3FromDiagonal(d), Vec3{})
}

// Translate creates a translation transform.
func Translate(v Vec3) Transform4 {
	return Transform4FromMat3(IdentityMat3(), v)
}

// Transform4Reflection returns the reflection through plane f. The plane's
// normal must be unit length.
func Transform4Reflection(f Plane) Transform4 {
	x := f.X * -2
	y := f.Y * -2
	z := f.Z * -2
	nxny := x * f.Y
	nxnz := x * f.Z
	nynz := y * f.Z
	return NewTransform4(
		x*f.X+1, nxny, nxnz, x*f.D,
		nxny, y*f.Y+1, nynz, y*f.D,
		nxnz, nynz, z*f.Z+1, z*f.D,
	)
}

// Col returns column i in homogeneous form: W is 0 for the linear
// columns and 1 for the translation.
func (t Transform4) Col(i int) Vec4 {
	if i == 3 {
		return t[3].Extend(1)
	}
	return t[i].Extend(0)
}

// Row returns row i. Row 3 is always [0 0 0 1].
func (t Transform4) Row(i int) Vec4 {
	if i == 3 {
		return Vec4{0, 0, 0, 1}
	}
	return Vec4{t[0].Index(i), t[1].Index(i), t[2].Index(i), t[3].Index(i)}
}

// At returns the element at (row, col) of the full 4x4 form.
func (t Transform4) At(row, col int) float32 {
	return t.Col(col).Index(row)
}

// Linear returns the 3x3 linear part.
func (t Transform4) Linear() Mat3 {
	return Mat3{t[0], t[1], t[2]}
}

// Translation returns the translation column.
func (t Transform4) Translation() Vec3 {
	return t[3]
}

// SetTranslation replaces the translation column.
func (t *Transform4) SetTranslation(v Vec3) {
	t[3] = v
}

// Mat4 expands t into a full 4x4 matrix.
func (t Transform4) Mat4() Mat4 {
	return Mat4{t.Col(0), t.Col(1), t.Col(2), t.Col(3)}
}

// Transpose returns the transpose of the full 4x4 form. The result is no
// longer affine in general, so it is returned as a Mat4.
func (t Transform4) Transpose() Mat4 {
	return t.Mat4().Transpose()
}

// Determinant returns the determinant, which equals that of the linear part.
func (t Transform4) Determinant() float32 {
	return t.Linear().Determinant()
}

// Invert returns the inverse transform, or false when the linear part is
// singular (exact zero determinant).
func (t Transform4) Invert() (Transform4, bool) {
	a, b, c, d := t[0], t[1], t[2], t[3]

	s := a.Cross(b)
	u := c.Cross(d)

	det := s.Dot(c)
	if det == 0 {
		return Transform4{}, false
	}

	invDet := 1 / det
	s = s.Scale(invDet)
	u = u.Scale(invDet)
	v := c.Scale(invDet)

	r0 := b.Cross(v)
	r1 := v.Cross(a)

	return NewTransform4(
		r0.X, r0.Y, r0.Z, -b.Dot(u),
		r1.X, r1.Y, r1.Z, a.Dot(u),
		s.X, s.Y, s.Z, -d.Dot(s),
	), true
}

// Mul composes two transforms: a * b applies b first.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Transform4) Mul(b Transform4) Transform4 {
	return Transform4{
		a.MulVec3(b[0]),
		a.MulVec3(b[1]),
		a.MulVec3(b[2]),
		a.MulVec3(b[3]).Add(a[3]),
	}
}

// MulVec transforms a homogeneous vector. W passes through unchanged.
func (t Transform4) MulVec(v Vec4) Vec4 {
	return t.MulVec3(v.XYZ()).Add(t[3].Scale(v.W)).Extend(v.W)
}

// MulVec3 transforms a direction: the translation is not applied.
func (t Transform4) MulVec3(v Vec3) Vec3 {
	return t[0].Scale(v.X).Add(t[1].Scale(v.Y)).Add(t[2].Scale(v.Z))
}

// MulPt3 transforms a point: linear part, then translation.
func (t Transform4) MulPt3(p Pt3) Pt3 {
	return t.MulVec3(p.Vec()).Add(t[3]).Pt()
}
