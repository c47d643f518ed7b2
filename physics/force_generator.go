// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// ForceGenerator applies forces to a Mesh's accumulated per-vertex force
// buffer; it does not integrate or zero anything (§4.7).
type ForceGenerator interface {
	Apply(m *Mesh)
}

// EdgeSpring is a Hookean spring along every mesh edge, with each edge's
// rest length captured once at construction from the current geometry
// (§4.7).
type EdgeSpring struct {
	k           float64
	restLengths []float64
}

// NewEdgeSpring captures the current edge lengths of m as rest lengths for
// a spring of the given stiffness.
func NewEdgeSpring(m *Mesh, k float64) *EdgeSpring {
	edges := m.Triangles.Edges().All()
	rest := make([]float64, len(edges))
	for i, e := range edges {
		pa := m.Triangles.Vertices.Position(e.A)
		pb := m.Triangles.Vertices.Position(e.B)
		rest[i] = pb.Sub(pa).Length()
	}
	return &EdgeSpring{k: k, restLengths: rest}
}

// Apply implements ForceGenerator (§4.7).
func (s *EdgeSpring) Apply(m *Mesh) {
	edges := m.Triangles.Edges().All()
	for i, e := range edges {
		pa := m.Triangles.Vertices.Position(e.A)
		pb := m.Triangles.Vertices.Position(e.B)
		d := pb.Sub(pa)
		l := d.Length()
		if l <= 1e-10 {
			continue
		}
		n := d.Scale(1 / l)
		f := n.Scale(-s.k * (l - s.restLengths[i]))
		m.AddForce(e.A, f.Scale(-1))
		m.AddForce(e.B, f)
	}
}

// EdgeDamping applies damping proportional to the relative velocity
// component along each mesh edge (§4.7).
type EdgeDamping struct {
	c float64
}

// NewEdgeDamping builds an edge damping force with coefficient c.
func NewEdgeDamping(c float64) *EdgeDamping { return &EdgeDamping{c: c} }

// Apply implements ForceGenerator (§4.7).
func (s *EdgeDamping) Apply(m *Mesh) {
	edges := m.Triangles.Edges().All()
	for _, e := range edges {
		pa := m.Triangles.Vertices.Position(e.A)
		pb := m.Triangles.Vertices.Position(e.B)
		d := pb.Sub(pa)
		l := d.Length()
		if l <= 1e-10 {
			continue
		}
		n := d.Scale(1 / l)
		relV := m.Velocity(e.B).Sub(m.Velocity(e.A))
		along := relV.Dot(n)
		f := n.Scale(-s.c * along)
		m.AddForce(e.A, f.Scale(-1))
		m.AddForce(e.B, f)
	}
}
