package math3d

import (
	"math"

	"github.com/chewxy/math32"
)

// Margin bounds the difference two floats may have and still compare equal:
// within Epsilon absolutely, or within ULPs units in the last place.
type Margin struct {
	ULPs    int32
	Epsilon float32
}

// DefaultMargin is used by the ApproxEqual methods.
var DefaultMargin = Margin{ULPs: 4, Epsilon: 1e-4}

// ApproxEqual reports whether a and b are equal within m. NaN never matches.
func ApproxEqual(a, b float32, m Margin) bool {
	if a == b {
		return true
	}
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return false
	}
	if math32.Abs(a-b) <= m.Epsilon {
		return true
	}
	if math32.Signbit(a) != math32.Signbit(b) {
		return false
	}
	diff := int64(math.Float32bits(a)) - int64(math.Float32bits(b))
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(m.ULPs)
}

func approxSlice(a, b []float32, m Margin) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i], m) {
			return false
		}
	}
	return true
}

// ApproxEqual compares component-wise within DefaultMargin.
func (a Vec3) ApproxEqual(b Vec3) bool { return a.ApproxEqualMargin(b, DefaultMargin) }

// ApproxEqualMargin compares component-wise within m.
func (a Vec3) ApproxEqualMargin(b Vec3, m Margin) bool {
	x, y := a.Array(), b.Array()
	return approxSlice(x[:], y[:], m)
}

// ApproxEqual compares component-wise within DefaultMargin.
func (a Vec4) ApproxEqual(b Vec4) bool { return a.ApproxEqualMargin(b, DefaultMargin) }

// ApproxEqualMargin compares component-wise within m.
func (a Vec4) ApproxEqualMargin(b Vec4, m Margin) bool {
	x, y := a.Array(), b.Array()
	return approxSlice(x[:], y[:], m)
}

// ApproxEqual compares coordinate-wise within DefaultMargin.
func (p Pt3) ApproxEqual(q Pt3) bool { return p.ApproxEqualMargin(q, DefaultMargin) }

// ApproxEqualMargin compares coordinate-wise within m.
func (p Pt3) ApproxEqualMargin(q Pt3, m Margin) bool {
	return p.Vec().ApproxEqualMargin(q.Vec(), m)
}

// ApproxEqual compares component-wise within DefaultMargin. q and -q
// represent the same rotation but do not compare equal.
func (q Quat) ApproxEqual(r Quat) bool { return q.ApproxEqualMargin(r, DefaultMargin) }

// ApproxEqualMargin compares component-wise within m.
func (q Quat) ApproxEqualMargin(r Quat, m Margin) bool {
	x, y := q.Array(), r.Array()
	return approxSlice(x[:], y[:], m)
}

// ApproxEqual compares coefficient-wise within DefaultMargin.
func (f Plane) ApproxEqual(g Plane) bool { return f.ApproxEqualMargin(g, DefaultMargin) }

// ApproxEqualMargin compares coefficient-wise within m.
func (f Plane) ApproxEqualMargin(g Plane, m Margin) bool {
	x, y := f.Array(), g.Array()
	return approxSlice(x[:], y[:], m)
}

// ApproxEqual compares element-wise within DefaultMargin.
func (a Mat3) ApproxEqual(b Mat3) bool { return a.ApproxEqualMargin(b, DefaultMargin) }

// ApproxEqualMargin compares element-wise within m.
func (a Mat3) ApproxEqualMargin(b Mat3, m Margin) bool {
	for i := range a {
		if !a[i].ApproxEqualMargin(b[i], m) {
			return false
		}
	}
	return true
}

// ApproxEqual compares element-wise within DefaultMargin.
func (a Mat4) ApproxEqual(b Mat4) bool { return a.ApproxEqualMargin(b, DefaultMargin) }

// ApproxEqualMargin compares element-wise within m.
func (a Mat4) ApproxEqualMargin(b Mat4, m Margin) bool {
	for i := range a {
		if !a[i].ApproxEqualMargin(b[i], m) {
			return false
		}
	}
	return true
}

// ApproxEqual compares the stored rows element-wise within DefaultMargin.
func (a Transform4) ApproxEqual(b Transform4) bool { return a.ApproxEqualMargin(b, DefaultMargin) }

// ApproxEqualMargin compares the stored rows element-wise within m.
func (a Transform4) ApproxEqualMargin(b Transform4, m Margin) bool {
	for i := range a {
		if !a[i].ApproxEqualMargin(b[i], m) {
			return false
		}
	}
	return true
}
