// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Integrator runs the per-tick pipeline over one Mesh: force accumulation,
// semi-implicit integration, then XPBD volume projection (§4.7).
type Integrator struct {
	Body       *Mesh
	Forces     []ForceGenerator
	Constraint *VolumeConstraint
}

// NewIntegrator builds an Integrator for body, with the given force
// generators and volume constraint (nil if the body has no volume
// constraint this tick).
func NewIntegrator(body *Mesh, forces []ForceGenerator, constraint *VolumeConstraint) *Integrator {
	return &Integrator{Body: body, Forces: forces, Constraint: constraint}
}

// Step advances the body by dt, given the owner-supplied current target
// volume targetVolume (§4.7 step 1). A non-positive dt is a no-op.
func (it *Integrator) Step(dt, targetVolume float64) {
	if dt <= 0 {
		return
	}

	if it.Constraint != nil {
		it.Constraint.SetTargetVolume(targetVolume)
	}

	it.Body.ZeroForces()
	for _, fg := range it.Forces {
		fg.Apply(it.Body)
	}

	for i := 0; i < it.Body.VertexCount(); i++ {
		idx := uint32(i)
		mass := it.Body.Mass(idx)
		accel := it.Body.Force(idx).Scale(1 / mass)
		v := it.Body.Velocity(idx).Add(accel.Scale(dt))
		it.Body.SetVelocity(idx, v)

		pos := it.Body.Triangles.Vertices.Position(idx)
		it.Body.Triangles.Vertices.SetPosition(idx, pos.Add(v.Scale(dt)))
	}
	it.Body.ZeroForces()

	if it.Constraint != nil {
		it.Constraint.Project(it.Body, dt)
	}
}
