// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sched implements the two-pass fair-sharing scheduler that drives
// the chemistry tick (§4.3, §4.5): a dry run discovers aggregate demand for
// each Molecule, then a real run applies every interaction scaled down by
// its most constrained requested resource.
package sched

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/wormcell/chem"
)

// resourceData tracks one Molecule's supply/demand for the current dry run
// (§4.3).
type resourceData struct {
	lastUpdateRun uint64
	requested     float64
	available     float64
}

func (r *resourceData) scalingFactor() float64 {
	if r.requested > r.available {
		if r.available <= 0 {
			return 0
		}
		return r.available / r.requested
	}
	return 1
}

// interactionData tracks one Interaction's standing across dry/real runs
// (§4.3), keyed by the interaction's own identity.
type interactionData struct {
	lastValidDryRun   uint64
	scalingFactor     float64
	requestedMolecule []chem.Molecule
	requestedSeen     map[chem.Molecule]bool
}

// Distributor is the fair resource-allocation pass manager (§4.3).
type Distributor struct {
	dryRunID, realRunID uint64

	resources    map[chem.Molecule]*resourceData
	interactions map[Interaction]*interactionData

	current *interactionData
}

// NewDistributor returns a Distributor with no dry run yet begun.
func NewDistributor() *Distributor {
	return &Distributor{
		resources:    make(map[chem.Molecule]*resourceData),
		interactions: make(map[Interaction]*interactionData),
	}
}

// IsDryRun reports whether the distributor is currently in its dry-run phase
// (§4.3: dry_run_id > real_run_id).
func (d *Distributor) IsDryRun() bool {
	return d.dryRunID > d.realRunID
}

// BeginDryRun starts a new dry-run pass: the compartment's current counts
// become the available supply for every molecule (§4.3).
func (d *Distributor) BeginDryRun(c *chem.Compartment) {
	d.dryRunID++
	c.Each(func(m chem.Molecule, p *chem.Population) {
		r, ok := d.resources[m]
		if !ok {
			r = &resourceData{}
			d.resources[m] = r
		}
		r.available = p.Count
		r.requested = 0
		r.lastUpdateRun = d.dryRunID
	})
}

// BeginInteraction starts ι's turn in the current pass (§4.3). A false
// result means the caller must skip calling ι.Apply this pass.
func (d *Distributor) BeginInteraction(i Interaction) bool {
	entry, ok := d.interactions[i]
	if !ok {
		entry = &interactionData{requestedSeen: make(map[chem.Molecule]bool)}
		d.interactions[i] = entry
	}
	d.current = entry

	if d.IsDryRun() {
		entry.requestedMolecule = entry.requestedMolecule[:0]
		for k := range entry.requestedSeen {
			delete(entry.requestedSeen, k)
		}
		entry.scalingFactor = 1
		return true
	}

	if entry.lastValidDryRun != d.dryRunID || entry.scalingFactor == 0 {
		return false
	}

	scaling := 1.0
	for _, m := range entry.requestedMolecule {
		r, ok := d.resources[m]
		if !ok || r.lastUpdateRun != d.dryRunID {
			return false
		}
		if s := r.scalingFactor(); s < scaling {
			scaling = s
		}
	}
	entry.scalingFactor = scaling
	return true
}

// AvailableOf returns the current interaction's scaled view of molecule's
// supply (§4.3). During a dry run the scaling factor is always 1, so
// interactions observe raw supply while accumulating demand. This is a
// pool-level quantity shared by every interaction requesting m; it is only
// safe to re-evaluate a rate formula against it during the dry run (where
// the scaling factor is 1). In the real run, an interaction must not feed
// AvailableOf back into its formula to recompute a "scaled" delta — that
// rescales the whole pool, not this interaction's own share of it. Instead,
// cache the amount computed during the dry run and scale that cached value
// by ScalingFactor (§4.3: ι.real_delta(m) = s_ι · ι.dry_delta(m)).
func (d *Distributor) AvailableOf(m chem.Molecule) float64 {
	r, ok := d.resources[m]
	if !ok || r.lastUpdateRun != d.dryRunID {
		return 0
	}
	return r.available * d.current.scalingFactor
}

// ScalingFactor returns s_ι, the current interaction's own scaling factor
// for the real run just begun (§4.3): the smallest available/requested
// ratio among every resource it requested during the dry run. Interactions
// use this to scale their cached dry-run delta rather than re-deriving it
// from AvailableOf.
func (d *Distributor) ScalingFactor() float64 {
	return d.current.scalingFactor
}

// Request records that the current interaction wants amount of molecule
// this tick (§4.3). amount must be strictly positive.
func (d *Distributor) Request(m chem.Molecule, amount float64) {
	if amount <= 0 {
		chk.Panic("Distributor.Request: amount must be > 0, got %v for %v", amount, m)
	}
	r, ok := d.resources[m]
	if !ok {
		if m == chem.ATP {
			d.current.scalingFactor = 0
			return
		}
		chk.Panic("Distributor.Request: molecule %v has no ResourceData (never seen in compartment)", m)
	}
	r.requested += amount
	if !d.current.requestedSeen[m] {
		d.current.requestedSeen[m] = true
		d.current.requestedMolecule = append(d.current.requestedMolecule, m)
	}
	d.current.lastValidDryRun = d.dryRunID
}

// BeginRealRun switches the distributor from dry-run to real-run mode for
// the current dry_run_id (§4.3).
func (d *Distributor) BeginRealRun() {
	if d.realRunID >= d.dryRunID {
		chk.Panic("Distributor.BeginRealRun: called without a pending dry run (realRunID=%d dryRunID=%d)", d.realRunID, d.dryRunID)
	}
	d.realRunID = d.dryRunID
}
