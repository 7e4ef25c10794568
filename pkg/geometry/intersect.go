// Package geometry provides distance and intersection routines for lines and
// planes, plus the bounding volumes and view frustum built on them.
//
// Lines are given as a point and a direction. The degenerate cases (parallel
// lines, a line parallel to a plane, planes without a unique common point)
// are reported with a false ok result rather than NaN.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/taigrr/linmath/pkg/math3d"
)

// minNormal is the smallest positive normal float32. A determinant is only
// treated as degenerate when its magnitude does not exceed it, which in
// practice means exactly zero or subnormal.
const minNormal float32 = 0x1p-126

func degenerate(det float32) bool {
	return !(math32.Abs(det) > minNormal)
}

// DistPointLine returns the distance from q to the line through p along v.
// v must be non-zero, otherwise the result is NaN.
func DistPointLine(q, p math3d.Pt3, v math3d.Vec3) float32 {
	a := q.Diff(p).Cross(v)
	return math32.Sqrt(a.LenSq() / v.LenSq())
}

// DistLineLine returns the shortest distance between the line through p1
// along v1 and the line through p2 along v2. Parallel lines fall back to
// the point-to-line distance.
func DistLineLine(p1 math3d.Pt3, v1 math3d.Vec3, p2 math3d.Pt3, v2 math3d.Vec3) float32 {
	dp := p2.Diff(p1)
	v12 := v1.LenSq()
	v22 := v2.LenSq()
	v1v2 := v1.Dot(v2)

	det := v1v2*v1v2 - v12*v22
	if degenerate(det) {
		a := dp.Cross(v1)
		return math32.Sqrt(a.LenSq() / v12)
	}

	inv := 1 / det
	dpv1 := dp.Dot(v1)
	dpv2 := dp.Dot(v2)
	t1 := (v1v2*dpv2 - v22*dpv1) * inv
	t2 := (v12*dpv2 - v1v2*dpv1) * inv

	return dp.Add(v2.Scale(t2)).Sub(v1.Scale(t1)).Len()
}

// IntersectLinePlane returns the point where the line through p along v
// meets plane f. ok is false when the line is parallel to the plane.
func IntersectLinePlane(p math3d.Pt3, v math3d.Vec3, f math3d.Plane) (q math3d.Pt3, ok bool) {
	fv := f.Dot(v)
	if degenerate(fv) {
		return math3d.Pt3{}, false
	}
	return p.Offset(v.Scale(-f.DotPt(p) / fv)), true
}

// IntersectThreePlanes returns the single point shared by three planes.
// ok is false when their normals are coplanar.
func IntersectThreePlanes(f1, f2, f3 math3d.Plane) (p math3d.Pt3, ok bool) {
	n1 := f1.Normal()
	n2 := f2.Normal()
	n3 := f3.Normal()

	n1xn2 := n1.Cross(n2)
	det := n1xn2.Dot(n3)
	if degenerate(det) {
		return math3d.Pt3{}, false
	}

	n3xn2 := n3.Cross(n2)
	n1xn3 := n1.Cross(n3)
	v := n3xn2.Scale(f1.D).
		Add(n1xn3.Scale(f2.D)).
		Sub(n1xn2.Scale(f3.D))
	return v.Div(det).Pt(), true
}

// IntersectTwoPlanes returns the line shared by two planes as a point on it
// and its direction n1 × n2. ok is false when the planes are parallel.
func IntersectTwoPlanes(f1, f2 math3d.Plane) (p math3d.Pt3, v math3d.Vec3, ok bool) {
	n1 := f1.Normal()
	n2 := f2.Normal()

	v = n1.Cross(n2)
	det := v.LenSq()
	if degenerate(det) {
		return math3d.Pt3{}, math3d.Vec3{}, false
	}

	vxn2 := v.Cross(n2)
	n1xv := n1.Cross(v)
	return vxn2.Scale(f1.D).Add(n1xv.Scale(f2.D)).Div(det).Pt(), v, true
}
