package math3d

import "github.com/go-gl/mathgl/mgl32"

// Conversions to and from mathgl's mgl32 types, which graphics bindings
// accept directly. Both sides store matrices column-major, so these are
// plain copies.

// Mgl returns v as an mgl32.Vec3.
func (a Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3(a.Array())
}

// Vec3FromMgl converts an mgl32.Vec3.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3FromArray(v)
}

// Mgl returns v as an mgl32.Vec4.
func (v Vec4) Mgl() mgl32.Vec4 {
	return mgl32.Vec4(v.Array())
}

// Vec4FromMgl converts an mgl32.Vec4.
func Vec4FromMgl(v mgl32.Vec4) Vec4 {
	return Vec4FromArray(v)
}

// Mgl returns m as an mgl32.Mat3.
func (m Mat3) Mgl() mgl32.Mat3 {
	var r mgl32.Mat3
	for col := range 3 {
		for row := range 3 {
			r[col*3+row] = m.At(row, col)
		}
	}
	return r
}

// Mat3FromMgl converts an mgl32.Mat3.
func Mat3FromMgl(m mgl32.Mat3) Mat3 {
	return Mat3{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

// Mgl returns m as an mgl32.Mat4.
func (m Mat4) Mgl() mgl32.Mat4 {
	return mgl32.Mat4(m.flat())
}

// Mat4FromMgl converts an mgl32.Mat4.
func Mat4FromMgl(m mgl32.Mat4) Mat4 {
	return mat4FromFlat(m)
}

// Mgl returns the full 4x4 form of t as an mgl32.Mat4.
func (t Transform4) Mgl() mgl32.Mat4 {
	return t.Mat4().Mgl()
}

// Mgl returns q as an mgl32.Quat.
func (q Quat) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromMgl converts an mgl32.Quat.
func QuatFromMgl(q mgl32.Quat) Quat {
	return Quat{q.V[0], q.V[1], q.V[2], q.W}
}
