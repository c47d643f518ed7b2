// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reaction implements the four Interaction variants of the
// chemistry model (§4.4): Phosphorylation, Dephosphorylation, Complex
// Formation, and Translation.
package reaction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/wormcell/chem"
	"github.com/cpmech/wormcell/sched"
)

// Phosphorylation models a kinase adding a phosphate group to a target
// protein with Hill-like kinetics in the kinase concentration (§4.4.1).
type Phosphorylation struct {
	Kinase, Target, Phosphorylated chem.Molecule
	RemovalRate, SaturationConstant float64
	atpCost                        float64
	dryDelta                       float64 // cached Apply result from the most recent dry run
}

// NewPhosphorylation builds a Phosphorylation interaction with the standard
// ATP cost (§4.4: "typical: 0.5 phosphorylation").
func NewPhosphorylation(kinase, target, phosphorylated chem.Molecule, removalRate, saturationConstant float64) *Phosphorylation {
	return &Phosphorylation{
		Kinase: kinase, Target: target, Phosphorylated: phosphorylated,
		RemovalRate: removalRate, SaturationConstant: saturationConstant,
		atpCost: 0.5,
	}
}

// NewPhosphorylationFromPrms builds a Phosphorylation the way `mdl/solid`
// model constructors read their coefficients: named entries in a fun.Prms
// block ("removalRate", "saturationConstant"), parsed once at construction.
func NewPhosphorylationFromPrms(kinase, target, phosphorylated chem.Molecule, prms fun.Prms) (*Phosphorylation, error) {
	var removalRate, saturationConstant float64
	var hasRate, hasSat bool
	for _, p := range prms {
		switch p.N {
		case "removalRate":
			removalRate, hasRate = p.V, true
		case "saturationConstant":
			saturationConstant, hasSat = p.V, true
		}
	}
	if !hasRate || !hasSat {
		return nil, chk.Err("phosphorylation: prms must set removalRate and saturationConstant")
	}
	return NewPhosphorylation(kinase, target, phosphorylated, removalRate, saturationConstant), nil
}

func (p *Phosphorylation) Mechanism() sched.Mechanism { return sched.Phosphorylation }
func (p *Phosphorylation) AtpCost() float64           { return p.atpCost }

// Apply implements sched.Interaction (§4.4.1). The Hill-kinetics formula is
// only evaluated against raw supply in the dry run; the real run scales
// that cached delta by s_ι rather than re-deriving it from the distributor's
// already-scaled view of Kinase/Target (§4.3: ι.real_delta = s_ι · ι.dry_delta).
func (p *Phosphorylation) Apply(c *chem.Compartment, dt float64, d *sched.Distributor) bool {
	if d.IsDryRun() {
		k := d.AvailableOf(p.Kinase)
		t := d.AvailableOf(p.Target)

		rate := p.RemovalRate * k / (p.SaturationConstant + k)
		delta := rate * t * dt
		p.dryDelta = delta

		if delta > 0 {
			d.Request(chem.ATP, delta*p.atpCost)
			d.Request(p.Target, delta)
			return true
		}
		return false
	}

	delta := p.dryDelta * d.ScalingFactor()
	if delta <= 0 {
		return false
	}
	c.GetOrCreate(chem.ATP).Count -= delta * p.atpCost
	c.GetOrCreate(p.Target).Count -= delta
	c.GetOrCreate(p.Phosphorylated).Count += delta
	return true
}
