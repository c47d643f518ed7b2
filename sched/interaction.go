// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import "github.com/cpmech/wormcell/chem"

// Mechanism is an informational tag naming the chemical kind of an
// Interaction (§4.4). It plays no role in scheduling.
type Mechanism uint8

const (
	Phosphorylation Mechanism = iota
	Dephosphorylation
	Binding
	Translation
)

func (m Mechanism) String() string {
	switch m {
	case Phosphorylation:
		return "PHOSPHORYLATION"
	case Dephosphorylation:
		return "DEPHOSPHORYLATION"
	case Binding:
		return "BINDING"
	case Translation:
		return "TRANSLATION"
	default:
		return "UNKNOWN"
	}
}

// Interaction is the common protocol every chemistry interaction satisfies
// (§4.4). Apply is called once per pass (dry and real); it reads the
// distributor's current view of resource availability, computes intended
// update magnitudes, and either registers demand (dry run) or commits
// mutations to the compartment (real run). The returned bool is advisory:
// whether any change occurred or any request was made.
//
// Implementations are compared for identity as map keys by the scheduler
// (§4.3: "keyed by stable address"), so each Interaction value must be used
// as a pointer.
type Interaction interface {
	Mechanism() Mechanism
	AtpCost() float64
	Apply(c *chem.Compartment, dt float64, d *Distributor) bool
}
