package math3d

import "fmt"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec4FromArray creates a Vec4 from an [x, y, z, w] array.
func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

// Array returns the components as [x, y, z, w].
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// XYZ returns the Vec3 portion (ignoring W).
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the Vec3 after dividing by W.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Index returns component i (0=X .. 3=W). It panics for any other i.
func (v Vec4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("math3d: Vec4 index %d out of range", i))
}

// SetIndex sets component i. It panics for i outside [0, 3].
func (v *Vec4) SetIndex(i int, x float32) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panic(fmt.Sprintf("math3d: Vec4 index %d out of range", i))
	}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / s.
func (v Vec4) Div(s float32) Vec4 {
	return v.Scale(1 / s)
}

// Negate returns the negated vector.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length.
func (v Vec4) Len() float32 {
	return Len(v)
}

// LenSq returns the squared length.
func (v Vec4) LenSq() float32 {
	return LenSq(v)
}

// Normalize returns the unit vector.
func (v Vec4) Normalize() Vec4 {
	return Normalize(v)
}

// ProjectOn returns the projection of v onto on.
func (v Vec4) ProjectOn(on Vec4) Vec4 {
	return ProjectOn(v, on)
}

// RejectOn returns the part of v orthogonal to on.
func (v Vec4) RejectOn(on Vec4) Vec4 {
	return RejectOn(v, on)
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}
