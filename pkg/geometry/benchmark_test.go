package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/taigrr/linmath/pkg/math3d"
)

func benchFrustum() Frustum {
	proj := math3d.Perspective(math32.Pi/3, 16.0/9.0, 0.1, 1000.0)
	view := math3d.LookAt(math3d.V3(0, 10, 20), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	return NewFrustum(proj.Mul(view))
}

// BenchmarkFrustumExtract benchmarks frustum plane extraction from view-projection matrix.
func BenchmarkFrustumExtract(b *testing.B) {
	proj := math3d.Perspective(math32.Pi/3, 16.0/9.0, 0.1, 100.0)

	for b.Loop() {
		_ = NewFrustum(proj)
	}
}

func BenchmarkFrustumCorners(b *testing.B) {
	frustum := benchFrustum()

	for b.Loop() {
		_, _ = frustum.Corners()
	}
}

// BenchmarkAABBIntersection benchmarks AABB vs frustum intersection test.
func BenchmarkAABBIntersection(b *testing.B) {
	frustum := NewFrustum(math3d.Perspective(math32.Pi/3, 16.0/9.0, 0.1, 100.0))

	visible := NewAABB(math3d.P3(-1, -1, -15), math3d.P3(1, 1, -5))
	b.Run("visible", func(b *testing.B) {
		for b.Loop() {
			_ = frustum.IntersectAABB(visible)
		}
	})

	// behind the camera, rejected by the first planes
	culled := NewAABB(math3d.P3(-1, -1, 5), math3d.P3(1, 1, 15))
	b.Run("culled", func(b *testing.B) {
		for b.Loop() {
			_ = frustum.IntersectAABB(culled)
		}
	})
}

// BenchmarkTransformAABB benchmarks AABB transformation.
func BenchmarkTransformAABB(b *testing.B) {
	local := NewAABB(math3d.P3(-1, -1, -1), math3d.P3(1, 1, 1))
	transform := math3d.Translate(math3d.V3(10, 5, -20)).
		Mul(math3d.Transform4FromMat3(math3d.Mat3RotateY(0.5), math3d.Zero3())).
		Mul(math3d.Transform4FromDiagonal(math3d.V3(2, 2, 2)))

	for b.Loop() {
		_ = local.Transform(transform)
	}
}

// BenchmarkCullingScenario simulates culling N objects, some visible, some not.
func BenchmarkCullingScenario(b *testing.B) {
	frustum := benchFrustum()

	rng := rand.New(rand.NewSource(42))
	local := NewAABB(math3d.P3(-1, -1, -1), math3d.P3(1, 1, 1))
	transforms := make([]math3d.Transform4, 100)
	for i := range transforms {
		// X, Z in [-50, 50], Y in [0, 10]
		x := rng.Float32()*100 - 50
		y := rng.Float32() * 10
		z := rng.Float32()*100 - 50
		transforms[i] = math3d.Translate(math3d.V3(x, y, z))
	}

	for b.Loop() {
		visible := 0
		for _, h := range transforms {
			if frustum.IntersectAABB(local.Transform(h)) {
				visible++
			}
		}
		_ = visible
	}
}

func BenchmarkIntersectThreePlanes(b *testing.B) {
	f1 := math3d.NewPlane(1, 1, 0, -3)
	f2 := math3d.NewPlane(0, 1, 1, -5)
	f3 := math3d.NewPlane(1, 0, 1, -4)

	for b.Loop() {
		_, _ = IntersectThreePlanes(f1, f2, f3)
	}
}

func BenchmarkDistLineLine(b *testing.B) {
	p1, v1 := math3d.P3(1, 2, 3), math3d.V3(1, 1, 0)
	p2, v2 := math3d.P3(-1, 0, 2), math3d.V3(0, 1, 1)

	for b.Loop() {
		_ = DistLineLine(p1, v1, p2, v2)
	}
}
