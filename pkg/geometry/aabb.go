package geometry

import (
	"github.com/taigrr/linmath/pkg/math3d"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Pt3
	Max math3d.Pt3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Pt3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromPoints returns the smallest box containing every point.
// ok is false when pts is empty.
func AABBFromPoints(pts ...math3d.Pt3) (box AABB, ok bool) {
	if len(pts) == 0 {
		return AABB{}, false
	}
	lo, hi := pts[0].Vec(), pts[0].Vec()
	for _, p := range pts[1:] {
		lo = lo.Min(p.Vec())
		hi = hi.Max(p.Vec())
	}
	return AABB{Min: lo.Pt(), Max: hi.Pt()}, true
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Pt3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Diff(b.Min)
}

// HalfSize returns half the dimensions (extents from center).
func (b AABB) HalfSize() math3d.Vec3 {
	return b.Size().Scale(0.5)
}

// Corners returns the eight corners. Bit 0 of the index selects max X,
// bit 1 max Y and bit 2 max Z.
func (b AABB) Corners() [8]math3d.Pt3 {
	var c [8]math3d.Pt3
	for i := range c {
		c[i] = math3d.P3(
			pick(i&1 != 0, b.Max.X, b.Min.X),
			pick(i&2 != 0, b.Max.Y, b.Min.Y),
			pick(i&4 != 0, b.Max.Z, b.Min.Z),
		)
	}
	return c
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: b.Min.Vec().Min(o.Min.Vec()).Pt(),
		Max: b.Max.Vec().Max(o.Max.Vec()).Pt(),
	}
}

// Transform returns an AABB that bounds the original AABB after transformation.
// This computes a new AABB that contains all 8 transformed corners.
func (b AABB) Transform(h math3d.Transform4) AABB {
	corners := b.Corners()
	for i := range corners {
		corners[i] = h.MulPt3(corners[i])
	}
	box, _ := AABBFromPoints(corners[:]...)
	return box
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Pt3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// pick is a conditional selection helper.
func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
