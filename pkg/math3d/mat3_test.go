package math3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func TestMat3Layout(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	require.Equal(t, V3(1, 2, 3), m.Row(0))
	require.Equal(t, V3(1, 4, 7), m.Col(0))
	require.Equal(t, V3(7, 8, 9), m.Row(2))
	require.Equal(t, float32(6), m.At(1, 2))
	require.Equal(t, [3][3]float32{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, m.Array())
	require.Equal(t, m, Mat3FromArray(m.Array()))
	require.Equal(t, m, Mat3FromRows(V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9)))
	require.Equal(t, m, Mat3FromCols(V3(1, 4, 7), V3(2, 5, 8), V3(3, 6, 9)))
	require.Equal(t, Mat3FromCols(V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9)), m.Transpose())

	m.Set(1, 2, -1)
	require.Equal(t, V3(4, 5, -1), m.Row(1))

	require.Panics(t, func() { m.Row(3) })
	require.Panics(t, func() { m.Col(3) })
}

func TestMat3Arithmetic(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	require.Equal(t, NewMat3(
		30, 36, 42,
		66, 81, 96,
		102, 126, 150,
	), m.Mul(m))
	require.Equal(t, V3(14, 32, 50), m.MulVec(V3(1, 2, 3)))
	require.Equal(t, m, m.Mul(IdentityMat3()))
	require.Equal(t, m, IdentityMat3().Mul(m))

	require.Equal(t, m.Scale(2), m.Add(m))
	require.Equal(t, Mat3{}, m.Sub(m))
	require.Equal(t, m.Scale(-1), m.Negate())
	require.Equal(t, m.Scale(0.5), m.Div(2))

	require.Equal(t, float32(0), m.Determinant())
	require.Equal(t, float32(1), IdentityMat3().Determinant())
	require.Equal(t, float32(24), Mat3Scale(V3(2, 3, 4)).Determinant())
}

func TestMat3Invert(t *testing.T) {
	m := NewMat3(
		2, 0, -1,
		5, 1, 0,
		0, 1, 3,
	)

	inv, ok := m.Invert()
	require.True(t, ok)
	requireApprox(t, Mat3FromArray([3][3]float32{
		{3, -15, 5},
		{-1, 6, -2},
		{1, -5, 2},
	}), inv)
	requireApprox(t, IdentityMat3(), m.Mul(inv))

	_, ok = NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	).Invert()
	require.False(t, ok)
}

func TestMat3AxisRotations(t *testing.T) {
	s, c := math32.Sincos(0.5)
	require.InDelta(t, 0.87758255, c, 1e-6)
	require.InDelta(t, 0.47942555, s, 1e-6)

	requireApprox(t, V3(0, c, s), Mat3RotateX(0.5).MulVec(V3(0, 1, 0)))
	requireApprox(t, V3(s, 0, c), Mat3RotateY(0.5).MulVec(V3(0, 0, 1)))
	requireApprox(t, V3(c, s, 0), Mat3RotateZ(0.5).MulVec(V3(1, 0, 0)))

	requireApprox(t, Mat3RotateX(0.5), Mat3Rotate(V3(1, 0, 0), 0.5))
	requireApprox(t, Mat3RotateY(0.5), Mat3Rotate(V3(0, 1, 0), 0.5))
	requireApprox(t, Mat3RotateZ(0.5), Mat3Rotate(V3(0, 0, 1), 0.5))

	// a quarter turn about Z takes X to Y
	requireApprox(t, V3(0, 1, 0), Mat3RotateZ(math32.Pi/2).MulVec(V3(1, 0, 0)))
}

func TestMat3Rotate(t *testing.T) {
	axis := V3(1, 2, 3).Normalize()
	m := Mat3Rotate(axis, 0.5)

	requireApprox(t, NewMat3(
		0.8863267, -0.3669074, 0.282496,
		0.4018838, 0.912559, -0.0756672,
		-0.2300314, 0.1805965, 0.9562795,
	), m)

	// the axis is fixed and the matrix is orthonormal
	requireApprox(t, axis, m.MulVec(axis))
	requireApprox(t, IdentityMat3(), m.Mul(m.Transpose()))
	require.InDelta(t, 1, m.Determinant(), 1e-5)

	// opposite angles cancel
	requireApprox(t, IdentityMat3(), m.Mul(Mat3Rotate(axis, -0.5)))
}

func TestMat3ReflectionAndInvolution(t *testing.T) {
	a := V3(1, 2, 3).Normalize()

	r := Mat3Reflection(a)
	requireApprox(t, NewMat3(
		6.0/7, -2.0/7, -3.0/7,
		-2.0/7, 3.0/7, -6.0/7,
		-3.0/7, -6.0/7, -2.0/7,
	), r)
	requireApprox(t, a.Negate(), r.MulVec(a))
	requireApprox(t, IdentityMat3(), r.Mul(r))
	require.InDelta(t, -1, r.Determinant(), 1e-5)

	// the half-turn is the negated reflection
	h := Mat3Involution(a)
	requireApprox(t, r.Negate(), h)
	requireApprox(t, a, h.MulVec(a))
	requireApprox(t, IdentityMat3(), h.Mul(h))
}

func TestMat3Scale(t *testing.T) {
	require.Equal(t, V3(2, 6, 12), Mat3Scale(V3(2, 3, 4)).MulVec(V3(1, 2, 3)))

	a := V3(1, 2, 3).Normalize()
	m := Mat3ScaleAlong(2, a)
	requireApprox(t, NewMat3(
		15.0/14, 1.0/7, 3.0/14,
		1.0/7, 9.0/7, 3.0/7,
		3.0/14, 3.0/7, 23.0/14,
	), m)
	requireApprox(t, a.Scale(2), m.MulVec(a))

	// directions perpendicular to the axis are untouched
	p := V3(3, 0, -1)
	requireApprox(t, p, m.MulVec(p))
}
