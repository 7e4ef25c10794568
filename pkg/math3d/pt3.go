package math3d

import "fmt"

// Pt3 is an affine point. It shares Vec3's arithmetic so that point sums and
// differences use the same formulas; the type system does not stop callers
// from adding two points.
type Pt3 struct {
	X, Y, Z float32
}

// P3 creates a new Pt3.
func P3(x, y, z float32) Pt3 {
	return Pt3{x, y, z}
}

// Pt3FromArray creates a Pt3 from an [x, y, z] array.
func Pt3FromArray(a [3]float32) Pt3 {
	return Pt3{a[0], a[1], a[2]}
}

// Array returns the coordinates as [x, y, z].
func (p Pt3) Array() [3]float32 {
	return [3]float32{p.X, p.Y, p.Z}
}

// Vec reinterprets p as the vector from the origin to p.
func (p Pt3) Vec() Vec3 {
	return Vec3(p)
}

// Index returns coordinate i. It panics for i outside [0, 2].
func (p Pt3) Index(i int) float32 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("math3d: Pt3 index %d out of range", i))
}

// Diff returns the displacement p - q.
func (p Pt3) Diff(q Pt3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Offset returns p moved by v.
func (p Pt3) Offset(v Vec3) Pt3 {
	return Pt3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

func (p Pt3) Add(q Pt3) Pt3 {
	return Pt3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Pt3) Sub(q Pt3) Pt3 {
	return Pt3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Pt3) Scale(s float32) Pt3 {
	return Pt3{p.X * s, p.Y * s, p.Z * s}
}

func (p Pt3) Div(s float32) Pt3 {
	return p.Scale(1 / s)
}

func (p Pt3) Negate() Pt3 {
	return Pt3{-p.X, -p.Y, -p.Z}
}

func (p Pt3) Dot(q Pt3) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Len returns the distance from the origin.
func (p Pt3) Len() float32 {
	return Len(p)
}

// Distance returns |p - q|.
func (p Pt3) Distance(q Pt3) float32 {
	return p.Diff(q).Len()
}
