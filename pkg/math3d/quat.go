package math3d

import "github.com/chewxy/math32"

// Quat is a quaternion x·i + y·j + z·k + w. Only unit quaternions represent
// rotations; the rotation helpers assume unit length and do not check it.
type Quat struct {
	X, Y, Z, W float32
}

// Q creates a new Quat.
func Q(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// QuatFromArray creates a Quat from an [x, y, z, w] array.
func QuatFromArray(a [4]float32) Quat {
	return Quat{a[0], a[1], a[2], a[3]}
}

// IdentityQuat returns the rotation that leaves every vector unchanged.
func IdentityQuat() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation by t radians about unit axis a.
func QuatFromAxisAngle(a Vec3, t float32) Quat {
	s, c := math32.Sincos(t / 2)
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// QuatFromMat3 extracts the rotation quaternion from a rotation matrix.
//
// The largest of w, x, y, z is derived first from the trace or the largest
// diagonal element, and the others from the off-diagonal sums and differences,
// so the divisor never gets close to zero.
func QuatFromMat3(m Mat3) Quat {
	m00 := m.At(0, 0)
	m11 := m.At(1, 1)
	m22 := m.At(2, 2)
	sum := m00 + m11 + m22

	switch {
	case sum > 0:
		w := math32.Sqrt(sum+1) * 0.5
		f := 0.25 / w
		return Quat{
			X: (m.At(2, 1) - m.At(1, 2)) * f,
			Y: (m.At(0, 2) - m.At(2, 0)) * f,
			Z: (m.At(1, 0) - m.At(0, 1)) * f,
			W: w,
		}
	case m00 > m11 && m00 > m22:
		x := math32.Sqrt(m00-m11-m22+1) * 0.5
		f := 0.25 / x
		return Quat{
			X: x,
			Y: (m.At(1, 0) + m.At(0, 1)) * f,
			Z: (m.At(0, 2) + m.At(2, 0)) * f,
			W: (m.At(2, 1) - m.At(1, 2)) * f,
		}
	case m11 > m22:
		y := math32.Sqrt(m11-m00-m22+1) * 0.5
		f := 0.25 / y
		return Quat{
			X: (m.At(1, 0) + m.At(0, 1)) * f,
			Y: y,
			Z: (m.At(2, 1) + m.At(1, 2)) * f,
			W: (m.At(0, 2) - m.At(2, 0)) * f,
		}
	default:
		z := math32.Sqrt(m22-m00-m11+1) * 0.5
		f := 0.25 / z
		return Quat{
			X: (m.At(0, 2) + m.At(2, 0)) * f,
			Y: (m.At(2, 1) + m.At(1, 2)) * f,
			Z: z,
			W: (m.At(1, 0) - m.At(0, 1)) * f,
		}
	}
}

// Array returns the components as [x, y, z, w].
func (q Quat) Array() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// VecPart returns (x, y, z).
func (q Quat) VecPart() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Mul returns the Hamilton product q * r, which applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate rotates v by the unit quaternion q, equivalent to q·v·q⁻¹.
func (q Quat) Rotate(v Vec3) Vec3 {
	b := q.VecPart()
	b2 := b.LenSq()
	return v.Scale(q.W*q.W - b2).
		Add(b.Scale(v.Dot(b) * 2)).
		Add(b.Cross(v).Scale(q.W * 2))
}

// Mat3 returns the rotation matrix of the unit quaternion q.
func (q Quat) Mat3() Mat3 {
	x2 := q.X * q.X
	y2 := q.Y * q.Y
	z2 := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z
	return NewMat3(
		1-2*(y2+z2), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(x2+z2), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(x2+y2),
	)
}

// Conjugate returns (-x, -y, -z, w), the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quat) Add(r Quat) Quat {
	return Quat{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

func (q Quat) Sub(r Quat) Quat {
	return Quat{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quat) Div(s float32) Quat {
	return q.Scale(1 / s)
}

func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(r Quat) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Len returns the quaternion norm.
func (q Quat) Len() float32 {
	return Len(q)
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	return Normalize(q)
}
