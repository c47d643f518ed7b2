// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ident01(tst *testing.T) {

	chk.PrintTitle("ident01: id <-> name round trip")

	Initialize()
	Initialize() // must be idempotent

	chk.StrAssert(IDToString(Atp), "ATP")
	chk.IntAssert(int(StringToID("ATP")), int(Atp))
	chk.IntAssert(int(StringToID("no-such-molecule")), int(Unknown))
}

func Test_ident02(tst *testing.T) {

	chk.PrintTitle("ident02: organelle and tRNA subranges")

	if !IsOrganelle(OrganelleCortex) {
		tst.Fatal("OrganelleCortex should be in the organelle subrange")
	}
	if IsOrganelle(Atp) {
		tst.Fatal("ATP should not be in the organelle subrange")
	}
	if IsOrganelle(Unknown) {
		tst.Fatal("UNKNOWN should not be in the organelle subrange")
	}

	if !IsUnchargedTRNA(TrnaMetATG) {
		tst.Fatal("TrnaMetATG should be in the uncharged tRNA subrange")
	}
	if IsUnchargedTRNA(TrnaMetATGCharged) {
		tst.Fatal("TrnaMetATGCharged should not be in the uncharged tRNA subrange")
	}

	chk.IntAssert(int(ChargedVariant(TrnaMetATG)), int(TrnaMetATGCharged))
	chk.IntAssert(int(ChargedVariant(TrnaIleATC)), int(TrnaIleATCCharged))
	chk.IntAssert(int(UnchargedVariant(TrnaGlyGGACharged)), int(TrnaGlyGGA))
}

func Test_ident03(tst *testing.T) {

	chk.PrintTitle("ident03: ChargedVariant panics on non-tRNA input")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected ChargedVariant to panic on a non-tRNA identifier")
		}
	}()
	ChargedVariant(Atp)
}
