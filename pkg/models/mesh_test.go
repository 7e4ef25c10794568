package models

import (
	"testing"

	"github.com/taigrr/linmath/pkg/math3d"
)

func newTriangle(a, b, c math3d.Pt3) *Mesh {
	m := NewMesh("tri")
	m.Vertices = []MeshVertex{{Position: a}, {Position: b}, {Position: c}}
	m.Faces = []Face{{V: [3]int{0, 1, 2}}}
	m.CalculateBounds()
	return m
}

func TestMeshBounds(t *testing.T) {
	m := newTriangle(math3d.P3(1, 0, -2), math3d.P3(-1, 4, 0), math3d.P3(0, 1, 2))

	if m.Bounds.Min != math3d.P3(-1, 0, -2) || m.Bounds.Max != math3d.P3(1, 4, 2) {
		t.Errorf("bounds = %v..%v", m.Bounds.Min, m.Bounds.Max)
	}
	if got := m.Center(); got != math3d.P3(0, 2, 0) {
		t.Errorf("Center() = %v, want (0, 2, 0)", got)
	}
	if got := m.Size(); got != math3d.V3(2, 4, 4) {
		t.Errorf("Size() = %v, want (2, 4, 4)", got)
	}
}

func TestCalculateNormals(t *testing.T) {
	// two triangles folded along the X axis
	m := NewMesh("fold")
	m.Vertices = []MeshVertex{
		{Position: math3d.P3(0, 0, 0)},
		{Position: math3d.P3(1, 0, 0)},
		{Position: math3d.P3(0, 1, 0)},
		{Position: math3d.P3(0, 0, 1)},
	}
	m.Faces = []Face{{V: [3]int{0, 1, 2}}, {V: [3]int{0, 3, 1}}}

	if m.HasNormals() {
		t.Error("HasNormals() before computing")
	}

	m.CalculateNormals()
	if !m.HasNormals() {
		t.Error("HasNormals() after CalculateNormals")
	}
	if _, n := m.GetVertex(2); !n.ApproxEqual(math3d.V3(0, 0, 1)) {
		t.Errorf("flat normal of vertex 2 = %v, want (0, 0, 1)", n)
	}
	if _, n := m.GetVertex(3); !n.ApproxEqual(math3d.V3(0, 1, 0)) {
		t.Errorf("flat normal of vertex 3 = %v, want (0, 1, 0)", n)
	}

	m.CalculateSmoothNormals()
	want := math3d.V3(0, 1, 1).Normalize()
	for _, i := range []int{0, 1} {
		if _, n := m.GetVertex(i); !n.ApproxEqual(want) {
			t.Errorf("smooth normal of shared vertex %d = %v, want %v", i, n, want)
		}
	}
	if _, n := m.GetVertex(2); !n.ApproxEqual(math3d.V3(0, 0, 1)) {
		t.Errorf("smooth normal of vertex 2 = %v, want (0, 0, 1)", n)
	}
}

func TestSmoothNormalsDegenerate(t *testing.T) {
	m := newTriangle(math3d.P3(0, 0, 0), math3d.P3(1, 1, 1), math3d.P3(2, 2, 2))
	m.CalculateSmoothNormals()
	if m.HasNormals() {
		t.Error("a degenerate triangle should leave zero normals")
	}
}

func TestMeshTransformNonUniformScale(t *testing.T) {
	m := newTriangle(math3d.P3(1, 0, 0), math3d.P3(0, 1, 0), math3d.P3(0, 0, 1))
	m.CalculateNormals()

	m.Transform(math3d.Transform4FromDiagonal(math3d.V3(1, 2, 1)))

	want := math3d.V3(2, 1, 2).Scale(1.0 / 3)
	for i := range m.Vertices {
		if _, n := m.GetVertex(i); !n.ApproxEqual(want) {
			t.Errorf("normal %d = %v, want %v", i, n, want)
		}
	}
	// still perpendicular to the stretched surface
	if got := m.faceNormal(m.Faces[0]).Normalize(); !got.ApproxEqual(want) {
		t.Errorf("face normal = %v, want %v", got, want)
	}
	if m.Bounds.Max != math3d.P3(1, 2, 1) {
		t.Errorf("bounds max = %v, want (1, 2, 1)", m.Bounds.Max)
	}
}

func TestMeshTransformMirror(t *testing.T) {
	m := newTriangle(math3d.P3(0, 0, 0), math3d.P3(1, 0, 0), math3d.P3(0, 1, 0))
	m.CalculateNormals()

	m.Transform(math3d.Transform4FromDiagonal(math3d.V3(-1, 1, 1)))

	if got := m.GetFace(0); got != [3]int{0, 2, 1} {
		t.Errorf("face = %v, want winding flipped to [0 2 1]", got)
	}
	face := m.faceNormal(m.Faces[0]).Normalize()
	if _, n := m.GetVertex(0); !n.ApproxEqual(face) {
		t.Errorf("vertex normal %v disagrees with face normal %v", n, face)
	}
}

func TestMeshTransformTranslation(t *testing.T) {
	m := newTriangle(math3d.P3(0, 0, 0), math3d.P3(1, 0, 0), math3d.P3(0, 1, 0))
	m.CalculateNormals()

	m.Transform(math3d.Translate(math3d.V3(0, 0, 5)))

	if pos, n := m.GetVertex(1); pos != math3d.P3(1, 0, 5) || n != math3d.V3(0, 0, 1) {
		t.Errorf("vertex 1 = %v %v", pos, n)
	}
	if m.Bounds.Min.Index(2) != 5 {
		t.Errorf("bounds min = %v", m.Bounds.Min)
	}
}

func TestMeshClone(t *testing.T) {
	m := newTriangle(math3d.P3(0, 0, 0), math3d.P3(1, 0, 0), math3d.P3(0, 1, 0))
	clone := m.Clone()

	clone.Vertices[0].Position = math3d.P3(9, 9, 9)
	clone.Faces[0].V[0] = 2

	if pos, _ := m.GetVertex(0); pos != math3d.P3(0, 0, 0) {
		t.Errorf("original vertex changed to %v", pos)
	}
	if m.GetFace(0)[0] != 0 {
		t.Error("original face changed")
	}
	if clone.Name != m.Name || clone.Bounds != m.Bounds {
		t.Error("clone should keep name and bounds")
	}
}
