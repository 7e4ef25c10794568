package math3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestQuatProduct(t *testing.T) {
	i := Q(1, 0, 0, 0)
	j := Q(0, 1, 0, 0)
	k := Q(0, 0, 1, 0)
	one := IdentityQuat()

	require.Equal(t, k, i.Mul(j))
	require.Equal(t, k.Negate(), j.Mul(i))
	require.Equal(t, i, j.Mul(k))
	require.Equal(t, j, k.Mul(i))
	require.Equal(t, one.Negate(), i.Mul(i))
	require.Equal(t, i, one.Mul(i))

	q := Q(1, 2, 3, 4)
	require.Equal(t, float32(30), q.Dot(q))
	require.Equal(t, Q(-1, -2, -3, 4), q.Conjugate())
	requireApprox(t, one.Scale(30), q.Mul(q.Conjugate()))
	require.Equal(t, V3(1, 2, 3), q.VecPart())
	require.Equal(t, q, QuatFromArray(q.Array()))
	require.InDelta(t, 1, q.Normalize().Len(), 1e-6)
}

func TestQuatAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(V3(0, 0, 1), 1)
	requireApprox(t, Q(0, 0, math32.Sin(0.5), math32.Cos(0.5)), q)
	requireApprox(t, Mat3RotateZ(1), q.Mat3())
	requireApprox(t, Mat3RotateZ(1).MulVec(V3(1, 2, 3)), q.Rotate(V3(1, 2, 3)))

	axis := V3(1, 2, 3).Normalize()
	q = QuatFromAxisAngle(axis, 0.5)
	requireApprox(t, Mat3Rotate(axis, 0.5), q.Mat3())
	requireApprox(t, axis, q.Rotate(axis))

	// composition matches the matrix product
	r := QuatFromAxisAngle(V3(0, 1, 0), -1.2)
	requireApprox(t, q.Mat3().Mul(r.Mat3()), q.Mul(r).Mat3())
	requireApprox(t, q.Rotate(r.Rotate(V3(-2, 1, 4))), q.Mul(r).Rotate(V3(-2, 1, 4)))

	// angles about the same axis add
	requireApprox(t,
		QuatFromAxisAngle(axis, 1.25),
		QuatFromAxisAngle(axis, 0.5).Mul(QuatFromAxisAngle(axis, 0.75)))

	// the conjugate undoes the rotation
	v := V3(0.3, -7, 2)
	requireApprox(t, v, q.Conjugate().Rotate(q.Rotate(v)))
}

func TestQuatFromMat3(t *testing.T) {
	requireApprox(t, Q(0, 0, math32.Sin(0.5), math32.Cos(0.5)), QuatFromMat3(Mat3RotateZ(1)))
	requireApprox(t, IdentityQuat(), QuatFromMat3(IdentityMat3()))

	// near half turns the trace is negative and the largest diagonal
	// element picks the branch
	tests := []struct {
		name string
		axis Vec3
	}{
		{"x", V3(1, 0, 0)},
		{"y", V3(0, 1, 0)},
		{"z", V3(0, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := QuatFromAxisAngle(tc.axis, 3)
			requireSameRotation(t, want, QuatFromMat3(want.Mat3()))
		})
	}

	for _, angle := range []float32{0.1, 1, 2, 3, -2.5} {
		q := QuatFromAxisAngle(V3(-2, 1, 0.5).Normalize(), angle)
		got := QuatFromMat3(q.Mat3())
		requireSameRotation(t, q, got)
		require.InDelta(t, 1, got.Len(), 1e-5)
	}
}

func TestQuatMatchesMgl(t *testing.T) {
	axis := V3(1, -1, 2).Normalize()
	q := QuatFromAxisAngle(axis, 0.8)
	ref := mgl32.QuatRotate(0.8, axis.Mgl())

	requireApprox(t, QuatFromMgl(ref), q)
	requireApprox(t, Vec3FromMgl(ref.Rotate(mgl32.Vec3{3, 2, 1})), q.Rotate(V3(3, 2, 1)))
	requireApprox(t, Mat4FromMgl(ref.Mat4()), Transform4FromMat3(q.Mat3(), Zero3()).Mat4())
	require.Equal(t, q, QuatFromMgl(q.Mgl()))
}
