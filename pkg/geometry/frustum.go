package geometry

import (
	"github.com/taigrr/linmath/pkg/math3d"
)

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum)
// and has unit length, so DotPt is a signed distance.
type Frustum struct {
	Planes [6]math3d.Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustum extracts frustum planes from a view-projection matrix.
// Uses the Gribb/Hartmann method: each plane is the sum or difference of
// the bottom row with one of the other rows.
func NewFrustum(m math3d.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	rows := [6]math3d.Vec4{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	}

	var f Frustum
	for i, r := range rows {
		f.Planes[i] = math3d.PlaneFromArray(r.Array()).Normalize()
	}
	return f
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible.
// Uses the "positive vertex" optimization for faster rejection.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		// the corner furthest along the normal; if it is outside, all are
		pVertex := math3d.P3(
			pick(plane.X >= 0, box.Max.X, box.Min.X),
			pick(plane.Y >= 0, box.Max.Y, box.Min.Y),
			pick(plane.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DotPt(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests if the AABB is completely inside the frustum.
func (f Frustum) ContainsAABB(box AABB) bool {
	for _, plane := range f.Planes {
		nVertex := math3d.P3(
			pick(plane.X >= 0, box.Min.X, box.Max.X),
			pick(plane.Y >= 0, box.Min.Y, box.Max.Y),
			pick(plane.Z >= 0, box.Min.Z, box.Max.Z),
		)
		if plane.DotPt(nVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Pt3) bool {
	for _, plane := range f.Planes {
		if plane.DotPt(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center math3d.Pt3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DotPt(center) < -radius {
			return false
		}
	}
	return true
}

// Corners returns the eight corner points of the frustum, indexed like
// AABB.Corners: bit 0 selects right, bit 1 top and bit 2 far.
// ok is false when some triple of planes has no single common point.
func (f Frustum) Corners() (c [8]math3d.Pt3, ok bool) {
	for i := range c {
		x := FrustumLeft
		if i&1 != 0 {
			x = FrustumRight
		}
		y := FrustumBottom
		if i&2 != 0 {
			y = FrustumTop
		}
		z := FrustumNear
		if i&4 != 0 {
			z = FrustumFar
		}
		c[i], ok = IntersectThreePlanes(f.Planes[x], f.Planes[y], f.Planes[z])
		if !ok {
			return c, false
		}
	}
	return c, true
}

// Bounds returns the axis-aligned box around the frustum corners.
func (f Frustum) Bounds() (AABB, bool) {
	c, ok := f.Corners()
	if !ok {
		return AABB{}, false
	}
	return AABBFromPoints(c[:]...)
}
