// Package models loads glTF scenes into meshes and node transforms.
package models

import (
	"github.com/taigrr/linmath/pkg/geometry"
	"github.com/taigrr/linmath/pkg/math3d"
)

// Mesh represents a triangle mesh.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	Bounds geometry.AABB
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Pt3
	Normal   math3d.Vec3
}

// Face represents a counter-clockwise triangle.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	pts := make([]math3d.Pt3, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i] = v.Position
	}
	if box, ok := geometry.AABBFromPoints(pts...); ok {
		m.Bounds = box
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Pt3 {
	return m.Bounds.Center()
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.Bounds.Size()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// faceNormal returns the unnormalized normal of f, whose length is twice
// the triangle area.
func (m *Mesh) faceNormal(f Face) math3d.Vec3 {
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Diff(v0).Cross(v2.Diff(v0))
}

// CalculateNormals computes face normals and assigns them to vertices.
// This is a simple flat-shading approach; a vertex shared by several
// faces keeps the normal of the last one.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		normal := m.faceNormal(f).Normalize()
		for _, i := range f.V {
			m.Vertices[i].Normal = normal
		}
	}
}

// CalculateSmoothNormals computes area-weighted averaged normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		normal := m.faceNormal(f) // Don't normalize yet
		for _, i := range f.V {
			m.Vertices[i].Normal = m.Vertices[i].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		if n := m.Vertices[i].Normal; n.LenSq() > 0 {
			m.Vertices[i].Normal = n.Normalize()
		}
	}
}

// HasNormals reports whether any vertex carries a non-zero normal.
func (m *Mesh) HasNormals() bool {
	for _, v := range m.Vertices {
		if v.Normal.LenSq() > 1e-6 {
			return true
		}
	}
	return false
}

// Transform applies h to all vertices. Normals are mapped by the
// inverse-transpose of the linear part so they stay perpendicular to the
// surface under non-uniform scaling; a singular linear part flattens the
// mesh and leaves the normals unchanged.
func (m *Mesh) Transform(h math3d.Transform4) {
	normalMat, ok := h.Linear().Invert()
	normalMat = normalMat.Transpose()

	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = h.MulPt3(v.Position)
		if ok && v.Normal.LenSq() > 0 {
			v.Normal = normalMat.MulVec(v.Normal).Normalize()
		}
	}

	// mirroring flips the winding
	if h.Determinant() < 0 {
		for i := range m.Faces {
			f := &m.Faces[i]
			f.V[1], f.V[2] = f.V[2], f.V[1]
		}
	}

	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]MeshVertex, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
		Bounds:   m.Bounds,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// GetVertex returns the position and normal for vertex i.
func (m *Mesh) GetVertex(i int) (pos math3d.Pt3, normal math3d.Vec3) {
	v := m.Vertices[i]
	return v.Position, v.Normal
}

// GetFace returns the vertex indices for face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}
