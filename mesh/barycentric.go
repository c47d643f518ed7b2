// Copyright 2024 The Wormcell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// ComputeBarycentric returns the barycentric weights of point with respect
// to triangle (v0, v1, v2): point ≈ w0·v0 + w1·v1 + w2·v2, clamped to
// [0, 1] and renormalized so w0+w1+w2 = 1 and the triangle interior is
// preserved (§4.6). A degenerate triangle returns (1, 0, 0).
func ComputeBarycentric(point, v0, v1, v2 Vec3) (w0, w1, w2 float64) {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	e2 := point.Sub(v0)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom <= 1e-20 {
		return 1, 0, 0
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	if u < 0 {
		u = 0
	}
	if v < 0 {
		v = 0
	}
	if w < 0 {
		w = 0
	}
	if u > 1 {
		u = 1
	}
	if v > 1 {
		v = 1
	}
	if w > 1 {
		w = 1
	}

	sum := u + v + w
	if sum <= 1e-20 {
		return 1, 0, 0
	}
	return u / sum, v / sum, w / sum
}
