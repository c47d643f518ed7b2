// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/wormcell/ident"
)

func Test_chem01(tst *testing.T) {

	chk.PrintTitle("chem01: mRNA degradation decays and removes spent entries")

	c := NewCompartment()
	m := Molecule{ID: ident.GeneX, Type: MRNA}
	c.GetOrCreate(m).Count = 100

	catalog := NewMoleculeCatalog()
	entry, err := NewMoleculeCatalogEntry(MoleculeCatalogEntry{Description: "geneX mRNA", HalfLifeS: 10})
	if err != nil {
		tst.Fatal(err)
	}
	catalog.Set(m, entry)

	// the sweep applies count *= exp(-dt/h), so dt = h leaves 100·e⁻¹
	want := 100 * math.Exp(-1)
	c.DegradeMRNA(10, catalog)
	if math.Abs(c.CountOf(m)-want) > 1e-6 {
		tst.Fatalf("count = %v, want ~%v after dt = HalfLifeS", c.CountOf(m), want)
	}

	c.DegradeMRNA(0, catalog)
	if math.Abs(c.CountOf(m)-want) > 1e-6 {
		tst.Fatalf("degradation at dt=0 must be a no-op, got %v", c.CountOf(m))
	}
}

func Test_chem02(tst *testing.T) {

	chk.PrintTitle("chem02: tRNA charging preserves uncharged+charged mass")

	c := NewCompartment()
	u := Molecule{ID: ident.TrnaMetATG, Type: TRNA}
	c.GetOrCreate(u).Count = 1000

	catalog := NewMoleculeCatalog()
	entry, err := NewMoleculeCatalogEntry(MoleculeCatalogEntry{Description: "tRNA-Met", ChargingRatePerS: 0.1})
	if err != nil {
		tst.Fatal(err)
	}
	catalog.Set(u, entry)

	charged := Molecule{ID: ident.ChargedVariant(ident.TrnaMetATG), Type: TRNA}
	before := c.CountOf(u) + c.CountOf(charged)
	c.ChargeTRNA(1.0, catalog)
	after := c.CountOf(u) + c.CountOf(charged)

	if math.Abs(before-after) > 1e-6 {
		tst.Fatalf("mass not preserved: before=%v after=%v", before, after)
	}
	if c.CountOf(charged) <= 0 {
		tst.Fatal("expected some tRNA to have been charged")
	}
}

func Test_chem03(tst *testing.T) {

	chk.PrintTitle("chem03: binding surface rebinding to a different surface panics")

	p := NewPopulation(10)
	s1 := NewBindingSurface("cortex")
	s2 := NewBindingSurface("spindle")
	p.BindTo(s1)

	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected BindTo to panic on rebinding to a different surface")
		}
	}()
	p.BindTo(s2)
}

func Test_chem04(tst *testing.T) {

	chk.PrintTitle("chem04: MustLookup surfaces a CatalogError for an unknown molecule")

	catalog := NewMoleculeCatalog()
	unknown := Molecule{ID: ident.Pie1, Type: Protein}
	if _, err := catalog.MustLookup(unknown); err == nil {
		tst.Fatal("expected an error for a molecule with no catalog entry")
	}
}
