// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Vertices is a flat point cloud with a monotonic version counter: any
// mutation bumps version, which invalidates the cached bounding box. Edges
// computed over a TriangleMesh are keyed to that mesh's own topology
// version, not to this one.
type Vertices struct {
	positions []Vec3
	version   uint64

	cachedBox        Box
	cachedBoxVersion uint64 // ^uint64(0) (set by NewVertices) means "never computed"
}

// NewVertices returns an empty vertex set.
func NewVertices() *Vertices {
	return &Vertices{cachedBoxVersion: ^uint64(0)}
}

// Add appends a vertex and returns its index.
func (v *Vertices) Add(p Vec3) uint32 {
	v.positions = append(v.positions, p)
	v.version++
	return uint32(len(v.positions) - 1)
}

// Position returns the vertex at index, or the zero vector if out of range.
func (v *Vertices) Position(index uint32) Vec3 {
	if int(index) < len(v.positions) {
		return v.positions[index]
	}
	return Vec3{}
}

// SetPosition overwrites the vertex at index, if in range.
func (v *Vertices) SetPosition(index uint32, p Vec3) {
	if int(index) < len(v.positions) {
		v.positions[index] = p
		v.version++
	}
}

// Count returns the number of vertices.
func (v *Vertices) Count() int { return len(v.positions) }

// Version reports the current mutation count.
func (v *Vertices) Version() uint64 { return v.version }

// Box returns the bounding box, recomputing only when version has advanced
// since the last call.
func (v *Vertices) Box() Box {
	if v.cachedBoxVersion == v.version {
		return v.cachedBox
	}
	box := EmptyBox()
	for _, p := range v.positions {
		box = box.Extend(p)
	}
	v.cachedBox = box
	v.cachedBoxVersion = v.version
	return box
}
