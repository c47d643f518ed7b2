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

// ComplexFormation binds two free proteins into a complex by mass-action
// kinetics, and independently dissociates existing complex back into its
// monomers at a first-order rate (§4.4.3).
type ComplexFormation struct {
	First, Second, Complex                            chem.Molecule
	BindingRate, DissociationRate, SaturationConstant float64
	atpCost                                            float64
	dryBind                                            float64 // cached Apply bind amount from the most recent dry run
}

// NewComplexFormation builds a ComplexFormation interaction with the
// standard ATP cost (§4.4: "typical: 0.2 binding").
func NewComplexFormation(first, second, complex chem.Molecule, bindingRate, dissociationRate, saturationConstant float64) *ComplexFormation {
	return &ComplexFormation{
		First: first, Second: second, Complex: complex,
		BindingRate: bindingRate, DissociationRate: dissociationRate, SaturationConstant: saturationConstant,
		atpCost: 0.2,
	}
}

// NewComplexFormationFromPrms builds a ComplexFormation from a named
// fun.Prms block ("bindingRate", "dissociationRate", "saturationConstant").
func NewComplexFormationFromPrms(first, second, complex chem.Molecule, prms fun.Prms) (*ComplexFormation, error) {
	var bindingRate, dissociationRate, saturationConstant float64
	var hasBind, hasDissoc, hasSat bool
	for _, p := range prms {
		switch p.N {
		case "bindingRate":
			bindingRate, hasBind = p.V, true
		case "dissociationRate":
			dissociationRate, hasDissoc = p.V, true
		case "saturationConstant":
			saturationConstant, hasSat = p.V, true
		}
	}
	if !hasBind || !hasDissoc || !hasSat {
		return nil, chk.Err("complexFormation: prms must set bindingRate, dissociationRate and saturationConstant")
	}
	return NewComplexFormation(first, second, complex, bindingRate, dissociationRate, saturationConstant), nil
}

func (p *ComplexFormation) Mechanism() sched.Mechanism { return sched.Binding }
func (p *ComplexFormation) AtpCost() float64           { return p.atpCost }

// Apply implements sched.Interaction (§4.4.3). Binding's mass-action
// potential is only evaluated against raw supply in the dry run; the real
// run scales that cached bind amount by s_ι instead of re-deriving it from
// the distributor's already-scaled view of First/Second (§4.3). Dissociation
// is queried directly against the compartment in both passes rather than
// through the distributor, since it does not compete for input resources.
func (p *ComplexFormation) Apply(c *chem.Compartment, dt float64, d *sched.Distributor) bool {
	if d.IsDryRun() {
		a := d.AvailableOf(p.First)
		b := d.AvailableOf(p.Second)

		potential := p.BindingRate * a * b / (p.SaturationConstant + a + b)
		bind := potential * dt
		if bind > a {
			bind = a
		}
		if bind > b {
			bind = b
		}
		p.dryBind = bind

		complexAmount := c.CountOf(p.Complex)
		dissoc := complexAmount * p.DissociationRate * dt

		if bind > 0 {
			d.Request(chem.ATP, bind*p.atpCost)
			d.Request(p.First, bind)
			d.Request(p.Second, bind)
		}
		return bind > 0 || dissoc > 0
	}

	bind := p.dryBind * d.ScalingFactor()
	complexAmount := c.CountOf(p.Complex)
	dissoc := complexAmount * p.DissociationRate * dt

	changed := false
	if bind > 0 {
		firstPop := c.GetOrCreate(p.First)
		secondPop := c.GetOrCreate(p.Second)
		complexPop := c.GetOrCreate(p.Complex)

		c.GetOrCreate(chem.ATP).Count -= bind * p.atpCost
		firstPop.Count -= bind
		secondPop.Count -= bind
		complexPop.Count += bind

		if firstPop.IsBound() {
			chk.Panic("ComplexFormation.Apply: first monomer %v must not be bound", p.First)
		}
		if secondPop.IsBound() {
			complexPop.BindTo(secondPop.BoundTo())
		}
		changed = true
	}

	if dissoc > 0 {
		complexPop := c.GetOrCreate(p.Complex)
		complexPop.Count -= dissoc
		c.GetOrCreate(p.First).Count += dissoc
		c.GetOrCreate(p.Second).Count += dissoc
		changed = true
	}

	return changed
}
