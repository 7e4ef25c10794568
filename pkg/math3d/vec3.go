// Package math3d provides single-precision 3D math primitives: vectors,
// points, matrices, quaternions, planes and affine transforms.
//
// Matrices are stored column-major. Constructors taking loose scalars take
// them in row-major reading order, so source code lays out like the matrix
// it builds.
package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromArray creates a Vec3 from an [x, y, z] array.
func Vec3FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Array returns the components as [x, y, z].
func (a Vec3) Array() [3]float32 {
	return [3]float32{a.X, a.Y, a.Z}
}

// Index returns component i (0=X, 1=Y, 2=Z). It panics for any other i.
func (a Vec3) Index(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	panic(fmt.Sprintf("math3d: Vec3 index %d out of range", i))
}

// SetIndex sets component i. It panics for i outside [0, 2].
func (a *Vec3) SetIndex(i int, x float32) {
	switch i {
	case 0:
		a.X = x
	case 1:
		a.Y = x
	case 2:
		a.Z = x
	default:
		panic(fmt.Sprintf("math3d: Vec3 index %d out of range", i))
	}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns a / s. Dividing by zero yields Inf or NaN components.
func (a Vec3) Div(s float32) Vec3 {
	return a.Scale(1 / s)
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Extend lifts a into homogeneous coordinates with the given w.
func (a Vec3) Extend(w float32) Vec4 {
	return Vec4{a.X, a.Y, a.Z, w}
}

// Pt reinterprets a as a point.
func (a Vec3) Pt() Pt3 {
	return Pt3(a)
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return Len(a)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float32 {
	return LenSq(a)
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to NaN.
func (a Vec3) Normalize() Vec3 {
	return Normalize(a)
}

// ProjectOn returns the projection of a onto on.
func (a Vec3) ProjectOn(on Vec3) Vec3 {
	return ProjectOn(a, on)
}

// RejectOn returns the part of a orthogonal to on.
func (a Vec3) RejectOn(on Vec3) Vec3 {
	return RejectOn(a, on)
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two vectors treated as positions.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around unit normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		min(a.X, b.X),
		min(a.Y, b.Y),
		min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		max(a.X, b.X),
		max(a.Y, b.Y),
		max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math32.Abs(a.X),
		math32.Abs(a.Y),
		math32.Abs(a.Z),
	}
}
