// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"math"

	"github.com/cpmech/wormcell/ident"
)

// removalThreshold is the count at or below which a degraded mRNA or a spent
// uncharged tRNA entry is dropped from the compartment (§4.2). The spec
// fixes it for reproducibility but marks it as a tunable parameter any
// implementer may expose; we keep it as an unexported constant for the same
// reason the teacher keeps numeric tolerances as package constants rather
// than runtime configuration.
const removalThreshold = 1e-2

// Compartment is a well-stirred mapping Molecule -> Population (§3, §4.2).
// The zero value is not usable; construct with NewCompartment.
type Compartment struct {
	pops map[Molecule]*Population
}

// NewCompartment returns an empty compartment.
func NewCompartment() *Compartment {
	return &Compartment{pops: make(map[Molecule]*Population)}
}

// GetOrCreate inserts Population(0.0) if m is absent and returns a mutable
// reference to it (§4.2).
func (c *Compartment) GetOrCreate(m Molecule) *Population {
	if p, ok := c.pops[m]; ok {
		return p
	}
	p := &Population{Count: 0.0}
	c.pops[m] = p
	return p
}

// Find returns nil if m is absent.
func (c *Compartment) Find(m Molecule) *Population {
	return c.pops[m]
}

// CountOf is a convenience accessor returning 0 for an absent molecule,
// used directly (not via the distributor) where the spec calls for reading
// counts outside of resource competition, e.g. the existing-complex query in
// ComplexFormation (§4.4.3).
func (c *Compartment) CountOf(m Molecule) float64 {
	if p, ok := c.pops[m]; ok {
		return p.Count
	}
	return 0
}

// remove deletes m's entry outright; callers must have already verified the
// count is at or below removalThreshold and that m is of a removable
// chemical type (§4.2).
func (c *Compartment) remove(m Molecule) {
	delete(c.pops, m)
}

// Each calls fn once per (Molecule, *Population) pair currently present.
// Iteration order is not observable (§3) and must not be relied upon by
// callers; it exists for collaborators such as data collectors (§6).
func (c *Compartment) Each(fn func(Molecule, *Population)) {
	for m, p := range c.pops {
		fn(m, p)
	}
}

// Len returns the number of distinct molecules currently tracked.
func (c *Compartment) Len() int {
	return len(c.pops)
}

// DegradeMRNA runs the mRNA degradation sweep (§4.2): for every Molecule of
// type MRNA with catalog half-life > 0, count decays exponentially; entries
// that decay to <= removalThreshold are dropped. Idempotent over an empty
// compartment and a no-op at dt == 0 (§8).
func (c *Compartment) DegradeMRNA(dt float64, catalog *MoleculeCatalog) {
	var toRemove []Molecule
	for m, p := range c.pops {
		if m.Type != MRNA {
			continue
		}
		entry := catalog.Lookup(m)
		if entry == nil || entry.HalfLifeS <= 0 {
			continue
		}
		p.Count *= math.Exp(-dt / entry.HalfLifeS)
		if p.Count <= removalThreshold {
			toRemove = append(toRemove, m)
		}
	}
	for _, m := range toRemove {
		c.remove(m)
	}
}

// ChargeTRNA runs the tRNA charging sweep (§4.2): for every uncharged tRNA
// Molecule with catalog charging rate > 0, a first-order fraction is moved
// into the charged counterpart. Preserves count(u) + count(charged(u)) up
// to the removal threshold (§8).
func (c *Compartment) ChargeTRNA(dt float64, catalog *MoleculeCatalog) {
	var toRemove []Molecule
	for m, p := range c.pops {
		if m.Type != TRNA || !ident.IsUnchargedTRNA(m.ID) {
			continue
		}
		entry := catalog.Lookup(m)
		if entry == nil || entry.ChargingRatePerS <= 0 {
			continue
		}
		transferred := p.Count * entry.ChargingRatePerS * dt
		if transferred <= removalThreshold {
			continue
		}
		p.Count -= transferred
		charged := c.GetOrCreate(Molecule{ID: ident.ChargedVariant(m.ID), Type: TRNA})
		charged.Count += transferred
		if p.Count <= removalThreshold {
			toRemove = append(toRemove, m)
		}
	}
	for _, m := range toRemove {
		c.remove(m)
	}
}
