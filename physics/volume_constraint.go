// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/wormcell/mesh"

// VolumeConstraint is an XPBD volume-preservation constraint over a Mesh's
// faces (§4.7). The Lagrange multiplier λ persists across ticks; it is
// never reset, since it accumulates the corrective impulse that removes
// plain-PBD's first-order stiffening artifact.
type VolumeConstraint struct {
	TargetVolume float64
	Compliance   float64 // 0 for a hard constraint
	lambda       float64
}

// NewVolumeConstraint builds a constraint targeting targetVolume.
func NewVolumeConstraint(targetVolume, compliance float64) *VolumeConstraint {
	return &VolumeConstraint{TargetVolume: targetVolume, Compliance: compliance}
}

// SetTargetVolume refreshes the constraint's target; called once per tick
// with the owner's current target (§4.7 step 1).
func (vc *VolumeConstraint) SetTargetVolume(v float64) { vc.TargetVolume = v }

// SignedVolume computes V(x) = (1/6) Σ_faces x_a · (x_b × x_c) (§4.7).
func (vc *VolumeConstraint) SignedVolume(m *Mesh) float64 {
	faces := m.Triangles.TriangleCount()
	var v float64
	for f := 0; f < faces; f++ {
		t := m.Triangles.TriangleAt(f)
		a := m.Triangles.Vertices.Position(t.A)
		b := m.Triangles.Vertices.Position(t.B)
		c := m.Triangles.Vertices.Position(t.C)
		v += (1.0 / 6.0) * a.Dot(b.Cross(c))
	}
	return v
}

// Project applies one XPBD volume-projection step (§4.7 step 4).
func (vc *VolumeConstraint) Project(m *Mesh, dt float64) {
	faces := m.Triangles.TriangleCount()
	if faces == 0 || dt <= 0 {
		return
	}

	n := m.Triangles.Vertices.Count()
	grad := make([]mesh.Vec3, n)

	for f := 0; f < faces; f++ {
		t := m.Triangles.TriangleAt(f)
		a := m.Triangles.Vertices.Position(t.A)
		b := m.Triangles.Vertices.Position(t.B)
		c := m.Triangles.Vertices.Position(t.C)
		grad[t.A] = grad[t.A].Add(b.Cross(c).Scale(1.0 / 6.0))
		grad[t.B] = grad[t.B].Add(c.Cross(a).Scale(1.0 / 6.0))
		grad[t.C] = grad[t.C].Add(a.Cross(b).Scale(1.0 / 6.0))
	}

	constraintC := vc.SignedVolume(m) - vc.TargetVolume

	var denom float64
	for i := 0; i < n; i++ {
		wi := 1.0 / m.Mass(uint32(i))
		denom += wi * grad[i].Dot(grad[i])
	}
	if denom <= 1e-20 {
		return
	}

	alphaTilde := vc.Compliance / (dt * dt)
	deltaLambda := (constraintC - alphaTilde*vc.lambda) / (denom + alphaTilde)
	vc.lambda += deltaLambda

	for i := 0; i < n; i++ {
		wi := 1.0 / m.Mass(uint32(i))
		dx := grad[i].Scale(-wi * deltaLambda)
		old := m.Triangles.Vertices.Position(uint32(i))
		m.Triangles.Vertices.SetPosition(uint32(i), old.Add(dx))
	}
}
