// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the triangle-mesh geometry the cortex solver runs
// on: an icosahedral sphere built by recursive subdivision, its lazily
// computed edge set, and barycentric point queries (§4.6).
package mesh

import "math"

// Vec3 is a 3-component vector. gosl's la package targets FEM sparse/dense
// linear systems (see DESIGN.md); nothing in this package assembles one, so
// a minimal fixed-size vector type is used directly instead.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Normalized returns a/‖a‖, or the zero vector if a is (near) zero length.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l <= 1e-10 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Box is an axis-aligned bounding box; Empty's Min/Max are inverted so the
// first Extend call establishes real bounds.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box that contains nothing.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// Extend grows the box to include p.
func (b Box) Extend(p Vec3) Box {
	return Box{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}
