// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/wormcell/chem"
	"github.com/cpmech/wormcell/ident"
)

// probe is a minimal Interaction that requests a fixed amount of one
// molecule in the dry run and records its own scaled share in the real run
// (amount · s_ι, never a re-derived pool-level read), to exercise the
// distributor's fairness math directly.
type probe struct {
	want     chem.Molecule
	amount   float64
	realSeen float64
}

func (p *probe) Mechanism() Mechanism { return Binding }
func (p *probe) AtpCost() float64     { return 0 }

func (p *probe) Apply(c *chem.Compartment, dt float64, d *Distributor) bool {
	if d.IsDryRun() {
		d.Request(p.want, p.amount)
		return true
	}
	p.realSeen = p.amount * d.ScalingFactor()
	return true
}

func Test_sched01(tst *testing.T) {

	chk.PrintTitle("sched01: fair proportional scaling over a scarce resource")

	c := chem.NewCompartment()
	scarce := chem.Molecule{ID: ident.ProteinA, Type: chem.Protein}
	c.GetOrCreate(scarce).Count = 100 // A = 100

	p1 := &probe{want: scarce, amount: 60} // r1 = 60
	p2 := &probe{want: scarce, amount: 90} // r2 = 90, r1+r2 = 150 > 100

	d := NewDistributor()
	d.BeginDryRun(c)
	for _, p := range []*probe{p1, p2} {
		if d.BeginInteraction(p) {
			p.Apply(c, 1.0, d)
		}
	}
	d.BeginRealRun()
	for _, p := range []*probe{p1, p2} {
		if d.BeginInteraction(p) {
			p.Apply(c, 1.0, d)
		}
	}

	wantShare1 := 60.0 * 100.0 / 150.0
	wantShare2 := 90.0 * 100.0 / 150.0
	if math.Abs(p1.realSeen-wantShare1) > 1e-9 {
		tst.Fatalf("p1 share = %v, want %v", p1.realSeen, wantShare1)
	}
	if math.Abs(p2.realSeen-wantShare2) > 1e-9 {
		tst.Fatalf("p2 share = %v, want %v", p2.realSeen, wantShare2)
	}
}

func Test_sched02(tst *testing.T) {

	chk.PrintTitle("sched02: unconstrained demand passes through at scaling factor 1")

	c := chem.NewCompartment()
	plenty := chem.Molecule{ID: ident.ProteinB, Type: chem.Protein}
	c.GetOrCreate(plenty).Count = 1000

	p := &probe{want: plenty, amount: 10}
	d := NewDistributor()
	d.BeginDryRun(c)
	if d.BeginInteraction(p) {
		p.Apply(c, 1.0, d)
	}
	d.BeginRealRun()
	if d.BeginInteraction(p) {
		p.Apply(c, 1.0, d)
	}

	if math.Abs(p.realSeen-10) > 1e-9 {
		tst.Fatalf("realSeen = %v, want 10 (its own request, scaling factor 1)", p.realSeen)
	}
}
