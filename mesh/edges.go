// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Edge is an undirected pair of vertex indices.
type Edge struct {
	A, B uint32
}

// Edges is the deduplicated edge set of a TriangleMesh, computed lazily and
// cached by TriangleMesh.Edges (§4.6).
type Edges struct {
	list []Edge
}

// Count returns the number of distinct edges.
func (e *Edges) Count() int { return len(e.list) }

// At returns the edge at index.
func (e *Edges) At(index int) Edge { return e.list[index] }

// All returns the edge list; callers must not mutate it.
func (e *Edges) All() []Edge { return e.list }

// directionalEdgeKey packs an ordered vertex pair into a single uint64, the
// way the original packs (end << 32 | start).
func directionalEdgeKey(start, end uint32) uint64 {
	return uint64(end)<<32 | uint64(start)
}

// directionlessEdgeKey normalizes the pair so (v1, v2) and (v2, v1) collide,
// used both to deduplicate edges and to key the subdivision midpoint map.
func directionlessEdgeKey(v1, v2 uint32) uint64 {
	if v1 <= v2 {
		return directionalEdgeKey(v1, v2)
	}
	return directionalEdgeKey(v2, v1)
}

// computeEdges walks every triangle's three directed edges and dedups them
// by their directionless key.
func computeEdges(m *TriangleMesh) *Edges {
	edges := &Edges{}
	seen := make(map[uint64]bool)

	add := func(a, b uint32) {
		key := directionlessEdgeKey(a, b)
		if seen[key] {
			return
		}
		seen[key] = true
		edges.list = append(edges.list, Edge{a, b})
	}

	for _, t := range m.triangles {
		add(t.A, t.B)
		add(t.B, t.C)
		add(t.C, t.A)
	}
	return edges
}
