package math3d

// Plane is the implicit plane x·p.x + y·p.y + z·p.z + d = 0.
// The normal (x, y, z) must be non-zero. It is never renormalized implicitly.
type Plane struct {
	X, Y, Z, D float32
}

// NewPlane creates a new Plane.
func NewPlane(x, y, z, d float32) Plane {
	return Plane{x, y, z, d}
}

// PlaneFromNormalPoint returns the plane with normal n passing through p.
func PlaneFromNormalPoint(n Vec3, p Pt3) Plane {
	return Plane{n.X, n.Y, n.Z, -n.Dot(p.Vec())}
}

// PlaneFromArray creates a Plane from an [x, y, z, d] array.
func PlaneFromArray(a [4]float32) Plane {
	return Plane{a[0], a[1], a[2], a[3]}
}

// Array returns the coefficients as [x, y, z, d].
func (f Plane) Array() [4]float32 {
	return [4]float32{f.X, f.Y, f.Z, f.D}
}

// Normal returns (x, y, z).
func (f Plane) Normal() Vec3 {
	return Vec3{f.X, f.Y, f.Z}
}

// Dot projects direction v onto the plane normal. The offset d is ignored.
func (f Plane) Dot(v Vec3) float32 {
	return f.X*v.X + f.Y*v.Y + f.Z*v.Z
}

// DotPt evaluates the plane equation at p. For a unit normal this is the
// signed distance from the plane: positive on the side the normal points to.
func (f Plane) DotPt(p Pt3) float32 {
	return f.X*p.X + f.Y*p.Y + f.Z*p.Z + f.D
}

// Normalize scales the plane so its normal has unit length.
func (f Plane) Normalize() Plane {
	inv := 1 / f.Normal().Len()
	return Plane{f.X * inv, f.Y * inv, f.Z * inv, f.D * inv}
}

// Mul returns the row-vector product f * h. Planes transform by the inverse
// of the point transform, so f mapped by M is f.Mul(M⁻¹).
func (f Plane) Mul(h Transform4) Plane {
	n := f.Normal()
	return Plane{
		X: n.Dot(h[0]),
		Y: n.Dot(h[1]),
		Z: n.Dot(h[2]),
		D: n.Dot(h[3]) + f.D,
	}
}
