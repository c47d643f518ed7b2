// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/wormcell/chem"
)

// Scheduler runs the fixed six-step per-tick orchestration (§4.5): a dry
// pass over the catalog to gather demand, a real pass in the same order to
// commit scaled effects, then the two first-order sweeps that live outside
// the interaction/distributor framework.
type Scheduler struct {
	Catalog     []Interaction
	Distributor *Distributor

	// Verbose enables terse per-tick diagnostics via gosl/io, off by default;
	// the core itself never decides logging policy (§7), this only exists for
	// the same ad-hoc debugging the teacher's own fem.Solver.Verbose gates.
	Verbose bool
	tick    uint64
}

// NewScheduler builds a Scheduler over catalog, in the fixed iteration order
// the caller supplies; that order is what makes the simulation reproducible
// (§4.5).
func NewScheduler(catalog []Interaction) *Scheduler {
	return &Scheduler{Catalog: catalog, Distributor: NewDistributor()}
}

// Tick advances the compartment by dt (§4.5).
func (s *Scheduler) Tick(c *chem.Compartment, dt float64, molCatalog *chem.MoleculeCatalog) {
	d := s.Distributor
	s.tick++

	d.BeginDryRun(c)
	for _, interaction := range s.Catalog {
		if d.BeginInteraction(interaction) {
			interaction.Apply(c, dt, d)
		}
	}

	d.BeginRealRun()
	applied := 0
	for _, interaction := range s.Catalog {
		if d.BeginInteraction(interaction) {
			if interaction.Apply(c, dt, d) {
				applied++
			}
		}
	}

	c.DegradeMRNA(dt, molCatalog)
	c.ChargeTRNA(dt, molCatalog)

	if s.Verbose {
		io.Pf(">> tick %d: %d/%d interactions applied, %d molecules tracked\n", s.tick, applied, len(s.Catalog), c.Len())
	}
}
