package math3d

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func TestVec3Basics(t *testing.T) {
	v := V3(1, 2, 3)
	require.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, v)
	require.Equal(t, [3]float32{1, 2, 3}, v.Array())
	require.Equal(t, v, Vec3FromArray([3]float32{1, 2, 3}))
	require.Equal(t, Vec3{}, Zero3())

	require.Equal(t, float32(1), v.Index(0))
	require.Equal(t, float32(2), v.Index(1))
	require.Equal(t, float32(3), v.Index(2))
	require.Panics(t, func() { v.Index(3) })
	require.Panics(t, func() { v.Index(-1) })

	v.SetIndex(1, 7)
	require.Equal(t, V3(1, 7, 3), v)
	require.Panics(t, func() { v.SetIndex(5, 0) })
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, 7, 9)},
		{"sub", a.Sub(b), V3(-3, -3, -3)},
		{"mul", a.Mul(b), V3(4, 10, 18)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"div", a.Div(2), V3(0.5, 1, 1.5)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"cross", a.Cross(b), V3(-3, 6, -3)},
		{"cross anticommutes", b.Cross(a), V3(3, -6, 3)},
		{"x cross y", Right().Cross(Up()), V3(0, 0, 1)},
		{"min", a.Min(V3(0, 5, 2)), V3(0, 2, 2)},
		{"max", a.Max(V3(0, 5, 2)), V3(1, 5, 3)},
		{"abs", V3(-1, 0, 2).Abs(), V3(1, 0, 2)},
		{"lerp", a.Lerp(b, 0.5), V3(2.5, 3.5, 4.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestVec3Metric(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	require.Equal(t, float32(32), a.Dot(b))
	require.Equal(t, float32(14), a.LenSq())
	require.Equal(t, math32.Sqrt(14), a.Len())
	requireApprox(t, a.Div(math32.Sqrt(14)), a.Normalize())
	require.InDelta(t, 1, a.Normalize().Len(), 1e-6)
	require.InDelta(t, 5, V3(0, 0, 0).Distance(V3(3, 4, 0)), 1e-6)

	requireApprox(t, b.Scale(32.0/77.0), a.ProjectOn(b))
	requireApprox(t, a.Sub(b.Scale(32.0/77.0)), a.RejectOn(b))
	require.InDelta(t, 0, a.RejectOn(b).Dot(b), 1e-5)
	requireApprox(t, a, a.ProjectOn(b).Add(a.RejectOn(b)))
}

func TestVec3Reflect(t *testing.T) {
	got := V3(1, -1, 0).Reflect(Up())
	requireApprox(t, V3(1, 1, 0), got)
}

func TestVec3DegenerateDivision(t *testing.T) {
	n := Zero3().Normalize()
	require.True(t, math.IsNaN(float64(n.X)))
	require.True(t, math.IsNaN(float64(n.Y)))
	require.True(t, math.IsNaN(float64(n.Z)))

	d := V3(1, -1, 0).Div(0)
	require.True(t, math.IsInf(float64(d.X), 1))
	require.True(t, math.IsInf(float64(d.Y), -1))

	p := V3(1, 2, 3).ProjectOn(Zero3())
	require.True(t, math.IsNaN(float64(p.X)))
}

func TestVec3Extend(t *testing.T) {
	v := V3(1, 2, 3).Extend(4)
	require.Equal(t, V4(1, 2, 3, 4), v)
	require.Equal(t, V3(1, 2, 3), v.XYZ())
	require.Equal(t, P3(1, 2, 3), V3(1, 2, 3).Pt())
}
