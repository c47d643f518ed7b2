// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// MoleculeCatalogEntry is the per-Molecule metadata loaded once at startup
// (§3). Rates are non-negative; a loader that builds one with a negative
// rate or non-finite parameter has a DataError (§7), raised at load time via
// NewMoleculeCatalogEntry rather than discovered mid-simulation.
type MoleculeCatalogEntry struct {
	Description          string
	ChemicalFormula      string
	MolecularWeight      float64
	Classification       string
	HalfLifeS            float64 // mRNA degradation half-life, seconds
	TranslationRatePerS  float64 // mRNA -> protein rate
	ChargingRatePerS     float64 // uncharged -> charged tRNA rate
}

// NewMoleculeCatalogEntry validates and builds a catalog entry; it is the
// sole place DataError (§7) is raised for molecule metadata.
func NewMoleculeCatalogEntry(e MoleculeCatalogEntry) (*MoleculeCatalogEntry, error) {
	for name, v := range map[string]float64{
		"MolecularWeight":     e.MolecularWeight,
		"HalfLifeS":           e.HalfLifeS,
		"TranslationRatePerS": e.TranslationRatePerS,
		"ChargingRatePerS":    e.ChargingRatePerS,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("molecule catalog entry %q: %s is not finite (%v)", e.Description, name, v)
		}
		if v < 0 {
			return nil, chk.Err("molecule catalog entry %q: %s must be >= 0, got %v", e.Description, name, v)
		}
	}
	return &e, nil
}

// MoleculeCatalog is a read-only, once-constructed Molecule -> metadata
// table (§3, §6).
type MoleculeCatalog struct {
	entries map[Molecule]*MoleculeCatalogEntry
}

// NewMoleculeCatalog builds an empty catalog; entries are added with Set at
// load time and the catalog is treated as immutable afterwards.
func NewMoleculeCatalog() *MoleculeCatalog {
	return &MoleculeCatalog{entries: make(map[Molecule]*MoleculeCatalogEntry)}
}

// Set records the metadata for m. Intended to be called only while the
// catalog is being loaded.
func (c *MoleculeCatalog) Set(m Molecule, entry *MoleculeCatalogEntry) {
	c.entries[m] = entry
}

// Lookup returns the entry for m, or nil if none was loaded. A nil result
// for a Molecule in active use by a committed population is a CatalogError
// (§3, §7, §8): callers that rely on the entry existing must check for nil
// and surface chk.Err themselves at the lookup site (MustLookup does this).
func (c *MoleculeCatalog) Lookup(m Molecule) *MoleculeCatalogEntry {
	return c.entries[m]
}

// MustLookup returns the entry for m or a CatalogError naming the offending
// molecule and identifier (§3, §7: "Missing catalog entry for a Molecule
// that is in use: fatal at the site of lookup").
func (c *MoleculeCatalog) MustLookup(m Molecule) (*MoleculeCatalogEntry, error) {
	entry := c.entries[m]
	if entry == nil {
		return nil, chk.Err("no molecule catalog entry for identifier=%v type=%v (%q)", m.ID, m.Type, m.Name())
	}
	return entry, nil
}

// GeneCatalogEntry is an ordered tRNA demand list for one gene's cognate
// protein (§3): the tRNA Molecule and the count consumed per unit protein
// produced.
type GeneCatalogEntry struct {
	TRNAs  []Molecule
	Counts []uint32
}

// NewGeneCatalogEntry builds a gene catalog entry from parallel parameter
// lists, the way mdl/solid constructors take fun.Prms: each fun.Prm's name
// is used only for provenance/debugging, its value (V) is the per-protein
// tRNA count.
func NewGeneCatalogEntry(trnas []Molecule, counts fun.Prms) *GeneCatalogEntry {
	e := &GeneCatalogEntry{TRNAs: trnas, Counts: make([]uint32, len(counts))}
	for i, p := range counts {
		e.Counts[i] = uint32(p.V)
	}
	return e
}

// GeneCatalog maps a gene's mRNA identifier to its tRNA demand list (§3).
// Absence of an entry means the mRNA cannot be translated, and no
// Translation interaction should exist for it (enforced by the loader, an
// external collaborator; the core only checks for absence, §4.4.4).
type GeneCatalog struct {
	entries map[Molecule]*GeneCatalogEntry
}

// NewGeneCatalog builds an empty gene catalog.
func NewGeneCatalog() *GeneCatalog {
	return &GeneCatalog{entries: make(map[Molecule]*GeneCatalogEntry)}
}

// Set records the tRNA demand list for the mRNA Molecule m.
func (c *GeneCatalog) Set(m Molecule, entry *GeneCatalogEntry) {
	c.entries[m] = entry
}

// Lookup returns the tRNA demand list for m, or nil if absent.
func (c *GeneCatalog) Lookup(m Molecule) *GeneCatalogEntry {
	return c.entries[m]
}
