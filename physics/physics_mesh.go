// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements the soft-body cortex solver (§4.7): per-vertex
// dynamic state over a mesh.TriangleMesh, edge-based spring and damping
// force generators, an XPBD volume constraint with a persistent Lagrange
// multiplier, and the integrator that ties them together each tick.
package physics

import "github.com/cpmech/wormcell/mesh"

// vertexState is the per-vertex dynamic state carried alongside mesh
// geometry: velocity, accumulated force, and mass (§4.7).
type vertexState struct {
	velocity mesh.Vec3
	force    mesh.Vec3
	mass     float64
}

// minMass is the floor applied when reading a vertex's mass, so a
// zero or unset mass never produces an infinite acceleration (§4.7:
// "Mass must be > 1e-12 (clamped on read)").
const minMass = 1e-12

// Mesh is a TriangleMesh paired with per-vertex physical state.
type Mesh struct {
	Triangles *mesh.TriangleMesh
	nodes     []vertexState
}

// NewMesh wraps tm with unit-mass, zero-velocity per-vertex state.
func NewMesh(tm *mesh.TriangleMesh) *Mesh {
	n := tm.Vertices.Count()
	nodes := make([]vertexState, n)
	for i := range nodes {
		nodes[i].mass = 1.0
	}
	return &Mesh{Triangles: tm, nodes: nodes}
}

func (m *Mesh) grow(index uint32) {
	for uint32(len(m.nodes)) <= index {
		m.nodes = append(m.nodes, vertexState{mass: 1.0})
	}
}

// Velocity returns the velocity of the vertex at index.
func (m *Mesh) Velocity(index uint32) mesh.Vec3 { m.grow(index); return m.nodes[index].velocity }

// SetVelocity sets the velocity of the vertex at index.
func (m *Mesh) SetVelocity(index uint32, v mesh.Vec3) { m.grow(index); m.nodes[index].velocity = v }

// Force returns the currently accumulated force on the vertex at index.
func (m *Mesh) Force(index uint32) mesh.Vec3 { m.grow(index); return m.nodes[index].force }

// AddForce accumulates f onto the vertex at index.
func (m *Mesh) AddForce(index uint32, f mesh.Vec3) {
	m.grow(index)
	m.nodes[index].force = m.nodes[index].force.Add(f)
}

// ZeroForces clears every vertex's accumulated force.
func (m *Mesh) ZeroForces() {
	for i := range m.nodes {
		m.nodes[i].force = mesh.Vec3{}
	}
}

// Mass returns the vertex's mass, clamped to minMass (§4.7).
func (m *Mesh) Mass(index uint32) float64 {
	m.grow(index)
	if m.nodes[index].mass < minMass {
		return minMass
	}
	return m.nodes[index].mass
}

// SetMass sets the vertex's mass.
func (m *Mesh) SetMass(index uint32, mass float64) { m.grow(index); m.nodes[index].mass = mass }

// VertexCount returns the number of tracked vertices.
func (m *Mesh) VertexCount() int { return len(m.nodes) }
