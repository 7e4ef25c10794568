package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/linmath/pkg/geometry"
	"github.com/taigrr/linmath/pkg/math3d"
)

var (
	// ErrNodeCycle is returned when a node is its own ancestor.
	ErrNodeCycle = errors.New("node hierarchy contains a cycle")
	// ErrNoScene is returned when the document's default scene does not exist.
	ErrNoScene = errors.New("no such scene")
	// ErrUnsupportedAccessor is returned for accessors whose layout cannot be
	// read as positions, normals or indices.
	ErrUnsupportedAccessor = errors.New("unsupported accessor")
)

// Node is a scene node with its transforms resolved.
type Node struct {
	Name     string
	Parent   int // -1 for roots
	Children []int

	// Local maps node space into the parent's space, World into scene space.
	Local math3d.Transform4
	World math3d.Transform4

	// Mesh in node space, nil when the node has none. Nodes referencing the
	// same glTF mesh share the pointer.
	Mesh *Mesh
}

// Scene is a loaded glTF scene. Node indices match the document's.
type Scene struct {
	Name  string
	Nodes []Node
	Roots []int
}

// GLTFLoader loads GLTF/GLB files into a Scene.
type GLTFLoader struct {
	// Options
	CalculateNormals bool
	SmoothNormals    bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
	}
}

// LoadScene loads a .gltf or .glb file with the default options.
func LoadScene(path string) (*Scene, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns its scene.
func (l *GLTFLoader) Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	scene, err := l.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	if scene.Name == "" {
		scene.Name = filepath.Base(path)
	}
	return scene, nil
}

// SceneFromDocument builds a scene from an already decoded document using
// the default options.
func SceneFromDocument(doc *gltf.Document) (*Scene, error) {
	return NewGLTFLoader().FromDocument(doc)
}

// FromDocument builds a scene from an already decoded document.
//
// The roots are the nodes of the document's default scene (or its first
// scene); without any scene every node that has no parent is a root.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Scene, error) {
	scene := &Scene{Nodes: make([]Node, len(doc.Nodes))}

	meshes := make(map[int]*Mesh)
	for i, n := range doc.Nodes {
		node := Node{
			Name:     n.Name,
			Parent:   -1,
			Children: n.Children,
			Local:    LocalTransform(n),
		}
		if n.Mesh != nil {
			mesh, err := l.mesh(doc, *n.Mesh, meshes)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			node.Mesh = mesh
		}
		scene.Nodes[i] = node
	}

	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if c < 0 || c >= len(doc.Nodes) {
				return nil, fmt.Errorf("node %d: child %d out of range", i, c)
			}
			if c == i {
				return nil, fmt.Errorf("node %d: %w", c, ErrNodeCycle)
			}
			if p := scene.Nodes[c].Parent; p != -1 {
				return nil, fmt.Errorf("node %d has two parents, %d and %d", c, p, i)
			}
			scene.Nodes[c].Parent = i
		}
	}

	switch {
	case len(doc.Scenes) > 0:
		idx := 0
		if doc.Scene != nil {
			idx = *doc.Scene
		}
		if idx < 0 || idx >= len(doc.Scenes) {
			return nil, fmt.Errorf("%w: %d", ErrNoScene, idx)
		}
		scene.Name = doc.Scenes[idx].Name
		scene.Roots = doc.Scenes[idx].Nodes
	default:
		for i, n := range scene.Nodes {
			if n.Parent == -1 {
				scene.Roots = append(scene.Roots, i)
			}
		}
	}

	visited := make([]bool, len(scene.Nodes))
	for _, r := range scene.Roots {
		if r < 0 || r >= len(scene.Nodes) {
			return nil, fmt.Errorf("root node %d out of range", r)
		}
		if err := scene.resolve(r, math3d.IdentityTransform4(), visited); err != nil {
			return nil, err
		}
	}

	// nodes outside the chosen scene still get world transforms
	for i, n := range scene.Nodes {
		if !visited[i] && n.Parent == -1 {
			if err := scene.resolve(i, math3d.IdentityTransform4(), visited); err != nil {
				return nil, err
			}
		}
	}
	for i, seen := range visited {
		if !seen {
			return nil, fmt.Errorf("node %d: %w", i, ErrNodeCycle)
		}
	}

	return scene, nil
}

// resolve sets the world transforms of node i and its descendants.
func (s *Scene) resolve(i int, parent math3d.Transform4, visited []bool) error {
	if visited[i] {
		return fmt.Errorf("node %d: %w", i, ErrNodeCycle)
	}
	visited[i] = true

	n := &s.Nodes[i]
	n.World = parent.Mul(n.Local)
	for _, c := range n.Children {
		if err := s.resolve(c, n.World, visited); err != nil {
			return err
		}
	}
	return nil
}

// WorldMesh returns a copy of node i's mesh in scene space, or nil when the
// node has no mesh.
func (s *Scene) WorldMesh(i int) *Mesh {
	n := s.Nodes[i]
	if n.Mesh == nil {
		return nil
	}
	m := n.Mesh.Clone()
	m.Transform(n.World)
	return m
}

// Bounds returns the scene-space box around every mesh. ok is false when
// the scene has no mesh vertices.
func (s *Scene) Bounds() (box geometry.AABB, ok bool) {
	for _, n := range s.Nodes {
		if n.Mesh == nil || n.Mesh.VertexCount() == 0 {
			continue
		}
		b := n.Mesh.Bounds.Transform(n.World)
		if !ok {
			box, ok = b, true
			continue
		}
		box = box.Union(b)
	}
	return box, ok
}

// TriangleCount returns the number of triangles drawn by the scene, counting
// shared meshes once per node.
func (s *Scene) TriangleCount() int {
	total := 0
	for _, n := range s.Nodes {
		if n.Mesh != nil {
			total += n.Mesh.TriangleCount()
		}
	}
	return total
}

// LocalTransform returns the node's transform relative to its parent: its
// matrix when one is set, otherwise translation * rotation * scale.
func LocalTransform(n *gltf.Node) math3d.Transform4 {
	if n.Matrix != ([16]float64{}) && n.Matrix != identityMatrix {
		m := n.Matrix
		return math3d.Transform4FromABCP(
			math3d.V3(float32(m[0]), float32(m[1]), float32(m[2])),
			math3d.V3(float32(m[4]), float32(m[5]), float32(m[6])),
			math3d.V3(float32(m[8]), float32(m[9]), float32(m[10])),
			math3d.V3(float32(m[12]), float32(m[13]), float32(m[14])),
		)
	}

	rot := math3d.IdentityQuat()
	if r := n.Rotation; r != ([4]float64{}) {
		rot = math3d.Q(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
	}
	scale := math3d.V3(1, 1, 1)
	if s := n.Scale; s != ([3]float64{}) {
		scale = math3d.V3(float32(s[0]), float32(s[1]), float32(s[2]))
	}
	t := n.Translation
	return math3d.Transform4FromMat3(
		rot.Mat3().Mul(math3d.Mat3Scale(scale)),
		math3d.V3(float32(t[0]), float32(t[1]), float32(t[2])),
	)
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// mesh returns the loaded mesh for glTF mesh idx, loading it on first use.
func (l *GLTFLoader) mesh(doc *gltf.Document, idx int, cache map[int]*Mesh) (*Mesh, error) {
	if m, ok := cache[idx]; ok {
		return m, nil
	}
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", idx)
	}

	src := doc.Meshes[idx]
	mesh := NewMesh(src.Name)
	if err := l.processMesh(doc, src, mesh); err != nil {
		return nil, fmt.Errorf("process mesh %q: %w", src.Name, err)
	}

	if l.CalculateNormals && !mesh.HasNormals() {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}
	mesh.CalculateBounds()

	cache[idx] = mesh
	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3Accessor(doc, normIdx)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		// Base vertex index for this primitive
		baseVertex := len(mesh.Vertices)

		for i, p := range positions {
			v := MeshVertex{Position: p.Pt()}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			f := Face{V: [3]int{indices[i], indices[i+1], indices[i+2]}}
			for j := range f.V {
				if f.V[j] < 0 || f.V[j] >= len(positions) {
					return fmt.Errorf("index %d out of range for %d vertices", f.V[j], len(positions))
				}
				f.V[j] += baseVertex
			}
			mesh.Faces = append(mesh.Faces, f)
		}
	}

	return nil
}

// accessor returns accessor idx with its bounds checked.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	acc, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: want float VEC3, got %v %v", ErrUnsupportedAccessor, acc.ComponentType, acc.Type)
	}

	data, err := accessorData(doc, acc, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, acc.Count)
	for i := range result {
		b := data.element(i)
		result[i] = math3d.V3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	acc, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: want SCALAR indices, got %v", ErrUnsupportedAccessor, acc.Type)
	}

	var size int
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("%w: index type %v", ErrUnsupportedAccessor, acc.ComponentType)
	}

	data, err := accessorData(doc, acc, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, acc.Count)
	for i := range result {
		b := data.element(i)
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// strided is a window onto a buffer holding count elements of size bytes
// every stride bytes.
type strided struct {
	buf    []byte
	stride int
	size   int
}

func (s strided) element(i int) []byte {
	off := i * s.stride
	return s.buf[off : off+s.size]
}

// accessorData returns the bytes behind an accessor whose elements are size
// bytes wide, after checking they fit in the buffer.
func accessorData(doc *gltf.Document, acc *gltf.Accessor, size int) (strided, error) {
	if acc.BufferView == nil {
		return strided{}, fmt.Errorf("accessor has no buffer view")
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return strided{}, fmt.Errorf("buffer view %d out of range", *acc.BufferView)
	}
	view := doc.BufferViews[*acc.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return strided{}, fmt.Errorf("buffer %d out of range", view.Buffer)
	}

	// gltf.Open resolves external and data URIs into Data
	data := doc.Buffers[view.Buffer].Data
	if data == nil {
		return strided{}, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = size
	}
	start := view.ByteOffset + acc.ByteOffset
	if acc.Count == 0 {
		return strided{buf: nil, stride: stride, size: size}, nil
	}
	end := start + (acc.Count-1)*stride + size
	if start < 0 || end > len(data) || end > view.ByteOffset+view.ByteLength {
		return strided{}, fmt.Errorf("accessor reads bytes [%d, %d) past its buffer view", start, end)
	}
	return strided{buf: data[start:end], stride: stride, size: size}, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
