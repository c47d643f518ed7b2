// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/wormcell/chem"
	"github.com/cpmech/wormcell/sched"
)

const translationMinMRNA = 1e-2

// Translation produces protein from mRNA, limited by the tRNA demand the
// Gene Catalog records for the mRNA's gene (§4.4.4). mRNA is catalytic: it
// participates in scaling but is never consumed at commit time.
type Translation struct {
	MRNA            chem.Molecule
	TranslationRate float64
	Genes           *chem.GeneCatalog
	atpCost         float64
	dryIntended     float64 // cached Apply result from the most recent dry run
}

// NewTranslation builds a Translation interaction with the standard ATP
// cost (§4.4: "typical: 0.3 translation"). mRNA must be of chemical type
// MRNA.
func NewTranslation(mRNA chem.Molecule, translationRate float64, genes *chem.GeneCatalog) *Translation {
	if mRNA.Type != chem.MRNA {
		chk.Panic("reaction: NewTranslation requires a Molecule of type MRNA, got %v", mRNA.Type)
	}
	return &Translation{MRNA: mRNA, TranslationRate: translationRate, Genes: genes, atpCost: 0.3}
}

// NewTranslationFromPrms builds a Translation from a named fun.Prms block
// ("translationRate").
func NewTranslationFromPrms(mRNA chem.Molecule, genes *chem.GeneCatalog, prms fun.Prms) (*Translation, error) {
	var translationRate float64
	var hasRate bool
	for _, p := range prms {
		if p.N == "translationRate" {
			translationRate, hasRate = p.V, true
		}
	}
	if !hasRate {
		return nil, chk.Err("translation: prms must set translationRate")
	}
	return NewTranslation(mRNA, translationRate, genes), nil
}

func (p *Translation) Mechanism() sched.Mechanism { return sched.Translation }
func (p *Translation) AtpCost() float64           { return p.atpCost }

// Apply implements sched.Interaction (§4.4.4). The tRNA-limited production
// amount is only computed against raw supply in the dry run; the real run
// scales that cached amount by s_ι instead of re-deriving it from the
// distributor's already-scaled view of mRNA/tRNA (§4.3).
func (p *Translation) Apply(c *chem.Compartment, dt float64, d *sched.Distributor) bool {
	if d.IsDryRun() {
		q := d.AvailableOf(p.MRNA)
		if q < translationMinMRNA {
			return false
		}

		intended := p.TranslationRate * dt * q

		gene := p.Genes.Lookup(p.MRNA)
		if gene == nil {
			return false
		}

		for i, trna := range gene.TRNAs {
			count := gene.Counts[i]
			if count == 0 {
				continue
			}
			avail := d.AvailableOf(trna)
			required := float64(count) * intended
			if avail < required {
				limited := avail / float64(count)
				if limited < intended {
					intended = limited
				}
			}
		}
		p.dryIntended = intended

		if intended > 0 {
			d.Request(chem.ATP, intended*p.atpCost)
			d.Request(p.MRNA, intended/(p.TranslationRate*dt))
			for i, trna := range gene.TRNAs {
				count := gene.Counts[i]
				if count == 0 {
					continue
				}
				d.Request(trna, float64(count)*intended)
			}
			return true
		}
		return false
	}

	intended := p.dryIntended * d.ScalingFactor()
	if intended <= 0 {
		return false
	}

	gene := p.Genes.Lookup(p.MRNA)
	if gene == nil {
		return false
	}

	requiredATP := intended * p.atpCost
	atpPop := c.GetOrCreate(chem.ATP)
	if atpPop.Count < requiredATP {
		return false
	}
	atpPop.Count -= requiredATP

	for i, trna := range gene.TRNAs {
		count := gene.Counts[i]
		if count == 0 {
			continue
		}
		pop := c.GetOrCreate(trna)
		pop.Count -= float64(count) * intended
		if pop.Count < 0 {
			pop.Count = 0
		}
	}

	protein := c.GetOrCreate(chem.Molecule{ID: p.MRNA.ID, Type: chem.Protein})
	protein.Count += intended

	return intended > 0
}
