// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/wormcell/chem"
	"github.com/cpmech/wormcell/sched"
)

// Dephosphorylation returns a phosphorylated protein to its unphosphorylated
// form at a simple first-order rate (§4.4.2).
type Dephosphorylation struct {
	Target, Phosphorylated chem.Molecule
	RecoveryRate           float64
	atpCost                float64
	dryDelta               float64 // cached Apply result from the most recent dry run
}

// NewDephosphorylation builds a Dephosphorylation interaction with the
// standard ATP cost (§4.4: "typical: 0.1 dephosphorylation").
func NewDephosphorylation(target, phosphorylated chem.Molecule, recoveryRate float64) *Dephosphorylation {
	return &Dephosphorylation{Target: target, Phosphorylated: phosphorylated, RecoveryRate: recoveryRate, atpCost: 0.1}
}

// NewDephosphorylationFromPrms builds a Dephosphorylation from a named
// fun.Prms block ("recoveryRate"), mirroring `mdl/solid`'s model constructor
// convention.
func NewDephosphorylationFromPrms(target, phosphorylated chem.Molecule, prms fun.Prms) (*Dephosphorylation, error) {
	var recoveryRate float64
	var hasRate bool
	for _, p := range prms {
		if p.N == "recoveryRate" {
			recoveryRate, hasRate = p.V, true
		}
	}
	if !hasRate {
		return nil, chk.Err("dephosphorylation: prms must set recoveryRate")
	}
	return NewDephosphorylation(target, phosphorylated, recoveryRate), nil
}

func (p *Dephosphorylation) Mechanism() sched.Mechanism { return sched.Dephosphorylation }
func (p *Dephosphorylation) AtpCost() float64           { return p.atpCost }

// Apply implements sched.Interaction (§4.4.2). Like Phosphorylation, the
// rate is only evaluated against raw supply in the dry run; the real run
// scales that cached delta by s_ι instead of re-deriving it from the
// distributor's already-scaled view of Phosphorylated (§4.3).
func (p *Dephosphorylation) Apply(c *chem.Compartment, dt float64, d *sched.Distributor) bool {
	if d.IsDryRun() {
		phos := d.AvailableOf(p.Phosphorylated)
		delta := phos * p.RecoveryRate * dt
		p.dryDelta = delta
		if delta <= 0 {
			return false
		}
		d.Request(chem.ATP, delta*p.atpCost)
		d.Request(p.Phosphorylated, delta)
		return true
	}

	delta := p.dryDelta * d.ScalingFactor()
	if delta <= 0 {
		return false
	}
	c.GetOrCreate(p.Phosphorylated).Count -= delta
	c.GetOrCreate(p.Target).Count += delta
	c.GetOrCreate(chem.ATP).Count -= delta * p.atpCost
	return true
}
