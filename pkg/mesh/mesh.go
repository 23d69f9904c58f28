// Package mesh holds the in-memory triangle mesh shared by the format
// readers, writers and geometry routines.
package mesh

import (
	"fmt"

	"github.com/Faultbox/meshconv/pkg/math"
)

// Absent marks a texture or normal reference that the face does not carry.
// It is never a valid index.
const Absent = -1

// VertexRef is one corner of a triangle: zero-based indices into the
// position, texture coordinate and normal arrays.
type VertexRef struct {
	Position int // Never Absent
	Texture  int // Index into TexCoords or Absent
	Normal   int // Index into Normals or Absent
}

// String returns the reference as "p/t/n" with absent components left empty.
func (r VertexRef) String() string {
	tex, norm := "", ""
	if r.Texture != Absent {
		tex = fmt.Sprint(r.Texture)
	}
	if r.Normal != Absent {
		norm = fmt.Sprint(r.Normal)
	}
	return fmt.Sprintf("%d/%s/%s", r.Position, tex, norm)
}

// Face is a triangle made of three vertex references.
type Face [3]VertexRef

// Model is a triangulated mesh.
type Model struct {
	Positions []math.Vec4 // Homogeneous positions, w defaults to 1
	TexCoords []math.Vec3 // (u, v, w), v and w default to 0
	Normals   []math.Vec3 // Vertex normals
	Faces     []Face      // Triangles with resolved indices
}

// New creates an empty model with room for roughly capacityHint elements
// in each array.
func New(capacityHint int) *Model {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Model{
		Positions: make([]math.Vec4, 0, capacityHint),
		TexCoords: make([]math.Vec3, 0, capacityHint),
		Normals:   make([]math.Vec3, 0, capacityHint),
		Faces:     make([]Face, 0, capacityHint),
	}
}

// TriangleCount returns the number of triangular faces.
func (m *Model) TriangleCount() int {
	return len(m.Faces)
}

// Triangle returns the corner positions of face i with w dropped.
func (m *Model) Triangle(i int) [3]math.Vec3 {
	f := m.Faces[i]
	return [3]math.Vec3{
		m.Positions[f[0].Position].XYZ(),
		m.Positions[f[1].Position].XYZ(),
		m.Positions[f[2].Position].XYZ(),
	}
}

// FacetNormal returns the normal referenced by the first vertex of face i.
// ok is false when that vertex carries no normal.
func (m *Model) FacetNormal(i int) (n math.Vec3, ok bool) {
	ref := m.Faces[i][0].Normal
	if ref == Absent {
		return math.Vec3{}, false
	}
	return m.Normals[ref], true
}

// Bounds returns the axis-aligned bounding box of all positions.
// ok is false for a model without positions.
func (m *Model) Bounds() (min, max math.Vec3, ok bool) {
	if len(m.Positions) == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	min = m.Positions[0].XYZ()
	max = min
	for _, p := range m.Positions[1:] {
		min = min.Min(p.XYZ())
		max = max.Max(p.XYZ())
	}
	return min, max, true
}
