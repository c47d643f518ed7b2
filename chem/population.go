// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "github.com/cpmech/gosl/chk"

// BindingSurface is an opaque identity token a Population fraction may be
// attached to (the cortex, the centrosome, ...). The core only ever compares
// these for identity; binding semantics beyond "who owns this fraction" are
// the collaborator's concern (§3).
type BindingSurface struct {
	key string
}

// NewBindingSurface returns a fresh identity token for the given human
// readable key (used only for diagnostics; identity is by the token itself,
// not the key string).
func NewBindingSurface(key string) *BindingSurface {
	return &BindingSurface{key: key}
}

func (s *BindingSurface) String() string {
	if s == nil {
		return "<none>"
	}
	return s.key
}

// Population is a (count, optional binding-surface) pair (§3).
type Population struct {
	Count   float64
	boundTo *BindingSurface
}

// NewPopulation builds a Population with the given initial count and no
// binding.
func NewPopulation(count float64) Population {
	return Population{Count: count}
}

// BoundTo returns the surface this population is attached to, or nil.
func (p *Population) BoundTo() *BindingSurface {
	return p.boundTo
}

// IsBound reports whether the population is attached to a binding surface.
func (p *Population) IsBound() bool {
	return p.boundTo != nil
}

// BindTo attaches the population to surface. Per §3 the surface may only be
// reassigned while unbound, or reassigned to the same surface; violating
// this is a ProgrammingError.
func (p *Population) BindTo(surface *BindingSurface) {
	if p.boundTo != nil && p.boundTo != surface {
		chk.Panic("Population.BindTo: already bound to %v, cannot rebind to %v", p.boundTo, surface)
	}
	p.boundTo = surface
}

// Unbind detaches the population from its current binding surface, if any.
func (p *Population) Unbind() {
	p.boundTo = nil
}
