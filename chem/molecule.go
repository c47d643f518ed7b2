// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chem holds the chemistry state of a single well-stirred
// compartment: molecule identities, populations, catalogs of per-molecule
// and per-gene metadata, and the two first-order sweeps (mRNA degradation,
// tRNA charging) that run outside the interaction/distributor framework.
package chem

import "github.com/cpmech/wormcell/ident"

// ChemicalType tags the broad class of a Molecule (§3).
type ChemicalType uint8

const (
	Protein ChemicalType = iota
	AminoAcid
	DNA
	MRNA
	TRNA
	Nucleotide
	Lipid
	Ion
	Other
)

func (t ChemicalType) String() string {
	switch t {
	case Protein:
		return "PROTEIN"
	case AminoAcid:
		return "AMINO_ACID"
	case DNA:
		return "DNA"
	case MRNA:
		return "MRNA"
	case TRNA:
		return "TRNA"
	case Nucleotide:
		return "NUCLEOTIDE"
	case Lipid:
		return "LIPID"
	case Ion:
		return "ION"
	default:
		return "OTHER"
	}
}

// Molecule is (Identifier, ChemicalType); it is the hash key for every
// population (§3). Equality is over both fields, so the same gene identifier
// used as mRNA and as protein is two distinct Molecules.
type Molecule struct {
	ID   ident.Identifier
	Type ChemicalType
}

// Name reports the molecule's human-readable name via the identifier
// registry (§3: "a Molecule with a known identifier uses the identifier for
// the name").
func (m Molecule) Name() string {
	return ident.IDToString(m.ID)
}

// ATP is the canonical ATP molecule, requested/consumed by every interaction
// kind that carries a non-zero ATP cost.
var ATP = Molecule{ID: ident.Atp, Type: Nucleotide}
