// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import "sync"

// idToName and nameToID hold the canonical id <-> name tables, built once by
// Initialize.
var (
	regOnce  sync.Once
	idToName []string
	nameToID map[string]Identifier
)

var rawNames = map[Identifier]string{
	Unknown: "UNKNOWN",

	KinaseA:      "KinaseA",
	KinaseB:      "KinaseB",
	Target:       "Target",
	TargetP:      "Target-P",
	ProteinA:     "ProteinA",
	ProteinB:     "ProteinB",
	Complex:      "Complex",
	Par1:         "PAR-1",
	Par2:         "PAR-2",
	Par3:         "PAR-3",
	Par6:         "PAR-6",
	Pkc3:         "PKC-3",
	Cdk1:         "CDK-1",
	Cdk2:         "CDK-2",
	CyclinB1:     "CYB-1",
	Plk1:         "PLK-1",
	Plk4:         "PLK-4",
	GammaTubulin: "gamma-tubulin",
	Pericentrin:  "pericentrin",
	Ninein:       "ninein",
	Mex3:         "MEX-3",
	Skn1:         "SKN-1",
	Pal1:         "PAL-1",
	Pie1:         "PIE-1",

	Atp: "ATP",
	Gtp: "GTP",

	GeneX:    "gene-X",
	GeneMex3: "gene-mex-3",
	GenePal1: "gene-pal-1",

	TrnaMetATG: "tRNA-Met-ATG",
	TrnaGlyGGA: "tRNA-Gly-GGA",
	TrnaGlyGGT: "tRNA-Gly-GGT",
	TrnaAlaGCA: "tRNA-Ala-GCA",
	TrnaAlaGCC: "tRNA-Ala-GCC",
	TrnaLeuCTG: "tRNA-Leu-CTG",
	TrnaLeuCTC: "tRNA-Leu-CTC",
	TrnaSerTCA: "tRNA-Ser-TCA",
	TrnaSerTCG: "tRNA-Ser-TCG",
	TrnaValGTG: "tRNA-Val-GTG",
	TrnaValGTC: "tRNA-Val-GTC",
	TrnaProCCA: "tRNA-Pro-CCA",
	TrnaThrACA: "tRNA-Thr-ACA",
	TrnaAspGAC: "tRNA-Asp-GAC",
	TrnaGluGAG: "tRNA-Glu-GAG",
	TrnaLysAAG: "tRNA-Lys-AAG",
	TrnaArgCGA: "tRNA-Arg-CGA",
	TrnaHisCAC: "tRNA-His-CAC",
	TrnaPheTTC: "tRNA-Phe-TTC",
	TrnaTyrTAC: "tRNA-Tyr-TAC",
	TrnaCysTGC: "tRNA-Cys-TGC",
	TrnaTrpTGG: "tRNA-Trp-TGG",
	TrnaAsnAAC: "tRNA-Asn-AAC",
	TrnaGlnCAG: "tRNA-Gln-CAG",
	TrnaIleATC: "tRNA-Ile-ATC",

	TrnaMetATGCharged: "tRNA-Met-ATG-charged",
	TrnaGlyGGACharged: "tRNA-Gly-GGA-charged",
	TrnaGlyGGTCharged: "tRNA-Gly-GGT-charged",
	TrnaAlaGCACharged: "tRNA-Ala-GCA-charged",
	TrnaAlaGCCCharged: "tRNA-Ala-GCC-charged",
	TrnaLeuCTGCharged: "tRNA-Leu-CTG-charged",
	TrnaLeuCTCCharged: "tRNA-Leu-CTC-charged",
	TrnaSerTCACharged: "tRNA-Ser-TCA-charged",
	TrnaSerTCGCharged: "tRNA-Ser-TCG-charged",
	TrnaValGTGCharged: "tRNA-Val-GTG-charged",
	TrnaValGTCCharged: "tRNA-Val-GTC-charged",
	TrnaProCCACharged: "tRNA-Pro-CCA-charged",
	TrnaThrACACharged: "tRNA-Thr-ACA-charged",
	TrnaAspGACCharged: "tRNA-Asp-GAC-charged",
	TrnaGluGAGCharged: "tRNA-Glu-GAG-charged",
	TrnaLysAAGCharged: "tRNA-Lys-AAG-charged",
	TrnaArgCGACharged: "tRNA-Arg-CGA-charged",
	TrnaHisCACCharged: "tRNA-His-CAC-charged",
	TrnaPheTTCCharged: "tRNA-Phe-TTC-charged",
	TrnaTyrTACCharged: "tRNA-Tyr-TAC-charged",
	TrnaCysTGCCharged: "tRNA-Cys-TGC-charged",
	TrnaTrpTGGCharged: "tRNA-Trp-TGG-charged",
	TrnaAsnAACCharged: "tRNA-Asn-AAC-charged",
	TrnaGlnCAGCharged: "tRNA-Gln-CAG-charged",
	TrnaIleATCCharged: "tRNA-Ile-ATC-charged",

	OrganelleNucleus:              "nucleus",
	OrganelleMitochondrion:        "mitochondrion",
	OrganelleEndoplasmicReticulum: "endoplasmic-reticulum",
	OrganelleSpindle:              "spindle",
	OrganelleCentrosome:           "centrosome",
	OrganelleCortex:               "cortex",
}

// Initialize builds the id<->name tables. It is idempotent and safe to call
// from multiple goroutines or multiple times at startup (§4.1).
func Initialize() {
	regOnce.Do(func() {
		idToName = make([]string, identifierCount)
		nameToID = make(map[string]Identifier, len(rawNames))
		for id := Identifier(0); id < identifierCount; id++ {
			name, ok := rawNames[id]
			if !ok {
				// unnamed slot (the subrange end sentinels); still total over the enum per §4.1
				name = ""
			}
			idToName[id] = name
			if name != "" {
				nameToID[name] = id
			}
		}
	})
}

// IDToString is total over the enumeration (§4.1).
func IDToString(id Identifier) string {
	Initialize()
	if id < 0 || int(id) >= len(idToName) {
		return rawNames[Unknown]
	}
	return idToName[id]
}

// StringToID returns Unknown for any name that was never registered (§4.1).
func StringToID(s string) Identifier {
	Initialize()
	if id, ok := nameToID[s]; ok {
		return id
	}
	return Unknown
}
