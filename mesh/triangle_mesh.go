// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// goldenRatio is used to place the 12 vertices of a unit icosahedron.
const goldenRatio = 1.61803398874989484820

// Triangle is a triplet of vertex indices, in the winding order used for
// normal and volume calculations.
type Triangle struct {
	A, B, C uint32
}

// TriangleMesh is an indexed triangle mesh over a shared Vertices point
// cloud (§4.6). Its own version counter tracks topology changes only;
// vertex position changes are tracked separately by Vertices.
type TriangleMesh struct {
	Vertices  *Vertices
	triangles []Triangle
	version   uint64

	edges        *Edges
	edgesVersion uint64
}

// NewTriangleMesh returns an empty mesh over vertices (a fresh Vertices if
// nil).
func NewTriangleMesh(vertices *Vertices) *TriangleMesh {
	if vertices == nil {
		vertices = NewVertices()
	}
	return &TriangleMesh{Vertices: vertices, edgesVersion: ^uint64(0)}
}

// AddTriangle appends a triangle and returns its index.
func (m *TriangleMesh) AddTriangle(a, b, c uint32) uint32 {
	m.triangles = append(m.triangles, Triangle{a, b, c})
	m.version++
	return uint32(len(m.triangles) - 1)
}

// TriangleCount returns the number of triangles.
func (m *TriangleMesh) TriangleCount() int { return len(m.triangles) }

// TriangleAt returns the vertex indices of the triangle at index.
func (m *TriangleMesh) TriangleAt(index int) Triangle { return m.triangles[index] }

// Icosahedron constructs the 12-vertex, 20-face regular icosahedron
// inscribed in the sphere of the given radius, using the standard
// golden-ratio coordinates (§4.6).
func Icosahedron(radius float64) *TriangleMesh {
	m := NewTriangleMesh(nil)

	norm := math.Sqrt(1 + goldenRatio*goldenRatio)
	a := radius / norm
	b := radius * goldenRatio / norm

	v := m.Vertices
	v.Add(Vec3{0, a, b})
	v.Add(Vec3{0, a, -b})
	v.Add(Vec3{0, -a, b})
	v.Add(Vec3{0, -a, -b})
	v.Add(Vec3{a, b, 0})
	v.Add(Vec3{-a, b, 0})
	v.Add(Vec3{a, -b, 0})
	v.Add(Vec3{-a, -b, 0})
	v.Add(Vec3{b, 0, a})
	v.Add(Vec3{-b, 0, a})
	v.Add(Vec3{b, 0, -a})
	v.Add(Vec3{-b, 0, -a})

	faces := [20][3]uint32{
		{0, 8, 4}, {0, 4, 5}, {0, 5, 9}, {0, 9, 2}, {0, 2, 8},
		{1, 5, 4}, {1, 4, 10}, {1, 10, 3}, {1, 3, 11}, {1, 11, 5},
		{2, 7, 6}, {2, 6, 8}, {2, 9, 7},
		{3, 6, 7}, {3, 7, 11}, {3, 10, 6},
		{4, 8, 10}, {5, 11, 9}, {6, 10, 8}, {7, 9, 11},
	}
	for _, f := range faces {
		m.AddTriangle(f[0], f[1], f[2])
	}
	return m
}

// Subdivide returns a new mesh over the same Vertices as m (the midpoints
// are appended to that shared vertex set): each triangle is split into four, midpoints deduplicated across shared edges via an
// index map keyed on the unordered vertex pair, each midpoint projected onto
// the sphere of m's average vertex radius (§4.6).
func (m *TriangleMesh) Subdivide() *TriangleMesh {
	sub := NewTriangleMesh(m.Vertices)
	midpoints := make(map[uint64]uint32)

	var radiusSum float64
	for i := 0; i < m.Vertices.Count(); i++ {
		radiusSum += m.Vertices.Position(uint32(i)).Length()
	}
	radius := radiusSum / float64(m.Vertices.Count())

	midpoint := func(v1, v2 uint32) uint32 {
		key := directionlessEdgeKey(v1, v2)
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := m.Vertices.Position(v1).Add(m.Vertices.Position(v2)).Scale(0.5)
		if l := mid.Length(); l > 1e-10 {
			mid = mid.Scale(radius / l)
		}
		idx := sub.Vertices.Add(mid)
		midpoints[key] = idx
		return idx
	}

	for _, t := range m.triangles {
		mAB := midpoint(t.A, t.B)
		mBC := midpoint(t.B, t.C)
		mCA := midpoint(t.C, t.A)
		sub.AddTriangle(t.A, mAB, mCA)
		sub.AddTriangle(t.B, mBC, mAB)
		sub.AddTriangle(t.C, mCA, mBC)
		sub.AddTriangle(mAB, mBC, mCA)
	}
	return sub
}

// Sphere builds icosahedron(radius) subdivided k times, verifying Euler's
// formula and the F = 20·4^k identity after construction (§4.6).
func Sphere(radius float64, k int) *TriangleMesh {
	m := Icosahedron(radius)
	m.VerifyTopology()
	for level := 0; level < k; level++ {
		m = m.Subdivide()
		m.VerifyTopology()
	}

	expectedF := 20 * (1 << uint(2*k))
	if m.TriangleCount() != expectedF {
		chk.Panic("mesh.Sphere: triangle count %d does not match 20*4^%d = %d", m.TriangleCount(), k, expectedF)
	}
	return m
}

// VerifyTopology asserts Euler's formula V - E + F = 2 for a closed
// triangle mesh, using the edge count implied by a freshly computed edge
// set (§4.6).
func (m *TriangleMesh) VerifyTopology() {
	f := m.TriangleCount()
	if f%2 != 0 {
		chk.Panic("mesh.VerifyTopology: face count %d must be even for a closed triangle mesh", f)
	}
	v := m.Vertices.Count()
	expectedV := 2 + f/2
	if v != expectedV {
		chk.Panic("mesh.VerifyTopology: vertex count %d, expected %d (= 2 + F/2)", v, expectedV)
	}

	edges := m.Edges()
	e := edges.Count()
	expectedE := (3 * f) / 2
	if e != expectedE {
		chk.Panic("mesh.VerifyTopology: edge count %d, expected %d (= 3F/2)", e, expectedE)
	}
	if v-e+f != 2 {
		chk.Panic("mesh.VerifyTopology: Euler's formula violated: V=%d E=%d F=%d", v, e, f)
	}
}

// Edges returns the mesh's edge set, computing it lazily and caching it
// until the next topology change (§4.6).
func (m *TriangleMesh) Edges() *Edges {
	if m.edges == nil || m.edgesVersion != m.version {
		m.edges = computeEdges(m)
		m.edgesVersion = m.version
	}
	return m.edges
}

// TriangleNormal returns the unit normal of the triangle at index, or +Z if
// the triangle is degenerate.
func (m *TriangleMesh) TriangleNormal(index int) Vec3 {
	t := m.triangles[index]
	p1 := m.Vertices.Position(t.A)
	p2 := m.Vertices.Position(t.B)
	p3 := m.Vertices.Position(t.C)
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if l := n.Length(); l > 1e-10 {
		return n.Scale(1 / l)
	}
	return Vec3{0, 0, 1}
}

// TriangleArea returns the area of the triangle at index.
func (m *TriangleMesh) TriangleArea(index int) float64 {
	t := m.triangles[index]
	p1 := m.Vertices.Position(t.A)
	p2 := m.Vertices.Position(t.B)
	p3 := m.Vertices.Position(t.C)
	return 0.5 * p2.Sub(p1).Cross(p3.Sub(p1)).Length()
}

// Barycentric returns the barycentric coordinates of point in the triangle
// at index (§4.6).
func (m *TriangleMesh) Barycentric(index int, point Vec3) (w0, w1, w2 float64) {
	t := m.triangles[index]
	return ComputeBarycentric(point, m.Vertices.Position(t.A), m.Vertices.Position(t.B), m.Vertices.Position(t.C))
}
