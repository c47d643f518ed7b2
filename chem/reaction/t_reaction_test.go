// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/wormcell/chem"
	"github.com/cpmech/wormcell/ident"
	"github.com/cpmech/wormcell/sched"
)

func tick(c *chem.Compartment, d *sched.Distributor, interactions []sched.Interaction, dt float64) {
	d.BeginDryRun(c)
	for _, i := range interactions {
		if d.BeginInteraction(i) {
			i.Apply(c, dt, d)
		}
	}
	d.BeginRealRun()
	for _, i := range interactions {
		if d.BeginInteraction(i) {
			i.Apply(c, dt, d)
		}
	}
}

func Test_reaction01(tst *testing.T) {

	chk.PrintTitle("reaction01: two-phosphorylation fair split")

	c := chem.NewCompartment()
	kinaseA := chem.Molecule{ID: ident.KinaseA, Type: chem.Protein}
	kinaseB := chem.Molecule{ID: ident.KinaseB, Type: chem.Protein}
	target := chem.Molecule{ID: ident.Target, Type: chem.Protein}
	targetP := chem.Molecule{ID: ident.TargetP, Type: chem.Protein}

	c.GetOrCreate(kinaseA).Count = 1000
	c.GetOrCreate(kinaseB).Count = 1000
	c.GetOrCreate(target).Count = 1000
	c.GetOrCreate(chem.ATP).Count = 1

	p1 := NewPhosphorylation(kinaseA, target, targetP, 1.0, 1000.0)
	p2 := NewPhosphorylation(kinaseB, target, targetP, 1.0, 1000.0)

	d := sched.NewDistributor()
	tick(c, d, []sched.Interaction{p1, p2}, 1.0)

	if math.Abs(c.CountOf(target)-998) > 1e-6 {
		tst.Fatalf("Target = %v, want ~998", c.CountOf(target))
	}
	if math.Abs(c.CountOf(targetP)-2) > 1e-6 {
		tst.Fatalf("T* = %v, want ~2", c.CountOf(targetP))
	}
	if c.CountOf(chem.ATP) < -1e-9 || c.CountOf(chem.ATP) > 1e-6 {
		tst.Fatalf("ATP = %v, want ~0", c.CountOf(chem.ATP))
	}
}

func Test_reaction02(tst *testing.T) {

	chk.PrintTitle("reaction02: dephosphorylation return")

	c := chem.NewCompartment()
	target := chem.Molecule{ID: ident.Target, Type: chem.Protein}
	targetP := chem.Molecule{ID: ident.TargetP, Type: chem.Protein}

	c.GetOrCreate(targetP).Count = 100
	c.GetOrCreate(chem.ATP).Count = 10

	dephos := NewDephosphorylation(target, targetP, 0.1)
	d := sched.NewDistributor()
	tick(c, d, []sched.Interaction{dephos}, 1.0)

	chk.IntAssert(int(math.Round(c.CountOf(targetP))), 90)
	chk.IntAssert(int(math.Round(c.CountOf(target))), 10)
	chk.IntAssert(int(math.Round(c.CountOf(chem.ATP))), 9)
}

func Test_reaction03(tst *testing.T) {

	chk.PrintTitle("reaction03: complex formation with zero dissociation rate")

	c := chem.NewCompartment()
	a := chem.Molecule{ID: ident.ProteinA, Type: chem.Protein}
	b := chem.Molecule{ID: ident.ProteinB, Type: chem.Protein}
	ab := chem.Molecule{ID: ident.Complex, Type: chem.Protein}

	c.GetOrCreate(a).Count = 100
	c.GetOrCreate(b).Count = 100
	c.GetOrCreate(chem.ATP).Count = 1000

	cf := NewComplexFormation(a, b, ab, 1.0, 0.0, 200.0)
	d := sched.NewDistributor()
	tick(c, d, []sched.Interaction{cf}, 1.0)

	if math.Abs(c.CountOf(a)-75) > 1e-6 {
		tst.Fatalf("A = %v, want 75", c.CountOf(a))
	}
	if math.Abs(c.CountOf(b)-75) > 1e-6 {
		tst.Fatalf("B = %v, want 75", c.CountOf(b))
	}
	if math.Abs(c.CountOf(ab)-25) > 1e-6 {
		tst.Fatalf("AB = %v, want 25", c.CountOf(ab))
	}
	if math.Abs(c.CountOf(chem.ATP)-995) > 1e-6 {
		tst.Fatalf("ATP = %v, want 995", c.CountOf(chem.ATP))
	}
}

func Test_reaction04(tst *testing.T) {

	chk.PrintTitle("reaction04: translation limited by scarce tRNA")

	c := chem.NewCompartment()
	mRNA := chem.Molecule{ID: ident.GeneX, Type: chem.MRNA}
	trnaMet := chem.Molecule{ID: ident.TrnaMetATG, Type: chem.TRNA}

	c.GetOrCreate(mRNA).Count = 10
	c.GetOrCreate(trnaMet).Count = 5
	c.GetOrCreate(chem.ATP).Count = 1000

	genes := chem.NewGeneCatalog()
	genes.Set(mRNA, &chem.GeneCatalogEntry{TRNAs: []chem.Molecule{trnaMet}, Counts: []uint32{1}})

	tr := NewTranslation(mRNA, 10.0, genes)
	d := sched.NewDistributor()
	tick(c, d, []sched.Interaction{tr}, 1.0)

	protein := chem.Molecule{ID: ident.GeneX, Type: chem.Protein}
	if math.Abs(c.CountOf(protein)-5) > 1e-6 {
		tst.Fatalf("protein = %v, want 5", c.CountOf(protein))
	}
	if c.CountOf(trnaMet) > 1e-6 {
		tst.Fatalf("tRNA_Met = %v, want ~0", c.CountOf(trnaMet))
	}
	if math.Abs(c.CountOf(mRNA)-10) > 1e-9 {
		tst.Fatalf("mRNA is catalytic and must stay at 10, got %v", c.CountOf(mRNA))
	}
	if math.Abs(c.CountOf(chem.ATP)-998.5) > 1e-6 {
		tst.Fatalf("ATP = %v, want 998.5", c.CountOf(chem.ATP))
	}
}

func Test_reaction05(tst *testing.T) {

	chk.PrintTitle("reaction05: order independence of fair scaling")

	build := func(order []sched.Interaction) *chem.Compartment {
		c := chem.NewCompartment()
		kinaseA := chem.Molecule{ID: ident.KinaseA, Type: chem.Protein}
		kinaseB := chem.Molecule{ID: ident.KinaseB, Type: chem.Protein}
		target := chem.Molecule{ID: ident.Target, Type: chem.Protein}
		c.GetOrCreate(kinaseA).Count = 1000
		c.GetOrCreate(kinaseB).Count = 1000
		c.GetOrCreate(target).Count = 1000
		c.GetOrCreate(chem.ATP).Count = 1
		d := sched.NewDistributor()
		tick(c, d, order, 1.0)
		return c
	}

	target := chem.Molecule{ID: ident.Target, Type: chem.Protein}
	kinaseA := chem.Molecule{ID: ident.KinaseA, Type: chem.Protein}
	kinaseB := chem.Molecule{ID: ident.KinaseB, Type: chem.Protein}
	targetP := chem.Molecule{ID: ident.TargetP, Type: chem.Protein}

	p1 := NewPhosphorylation(kinaseA, target, targetP, 1.0, 1000.0)
	p2 := NewPhosphorylation(kinaseB, target, targetP, 1.0, 1000.0)

	forward := build([]sched.Interaction{p1, p2})
	backward := build([]sched.Interaction{p2, p1})

	if math.Abs(forward.CountOf(target)-backward.CountOf(target)) > 1e-9 {
		tst.Fatalf("order dependence: forward=%v backward=%v", forward.CountOf(target), backward.CountOf(target))
	}
}

func Test_reaction06(tst *testing.T) {

	chk.PrintTitle("reaction06: building interactions from fun.Prms blocks")

	kinaseA := chem.Molecule{ID: ident.KinaseA, Type: chem.Protein}
	target := chem.Molecule{ID: ident.Target, Type: chem.Protein}
	targetP := chem.Molecule{ID: ident.TargetP, Type: chem.Protein}

	p, err := NewPhosphorylationFromPrms(kinaseA, target, targetP, fun.Prms{
		{N: "removalRate", V: 1.0},
		{N: "saturationConstant", V: 1000.0},
	})
	if err != nil {
		tst.Fatal(err)
	}
	if p.RemovalRate != 1.0 || p.SaturationConstant != 1000.0 {
		tst.Fatalf("prms not applied: %+v", p)
	}

	if _, err := NewPhosphorylationFromPrms(kinaseA, target, targetP, fun.Prms{{N: "removalRate", V: 1.0}}); err == nil {
		tst.Fatal("expected an error when saturationConstant is missing")
	}
}
