// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"github.com/blenderlab/forge/math32"
)

// ProfilePoint is one point of a 2D cross-section profile:
// a radius out from the vertical axis and a height along it.
type ProfilePoint struct {
	Radius float32
	Height float32
}

// Profile is an ordered 2D cross-section, bottom to top. A profile whose
// first and last points have radius 0 revolves into a closed solid.
//
// Height is expected to be monotonically non-decreasing; a non-monotonic
// profile may self-intersect, which is accepted as a caller
// responsibility and not validated here.
type Profile []ProfilePoint

// Validate checks that the profile can be revolved: at least 3 points
// and no negative radii. Returns [ErrCurveTopology] otherwise.
func (p Profile) Validate() error {
	if len(p) < 3 {
		return fmt.Errorf("%w: %d points, need at least 3", ErrCurveTopology, len(p))
	}
	for i, pt := range p {
		if pt.Radius < 0 {
			return fmt.Errorf("%w: point %d has negative radius %g", ErrCurveTopology, i, pt.Radius)
		}
	}
	return nil
}

// poles returns the number of zero-radius points in the profile.
func (p Profile) poles() int {
	n := 0
	for _, pt := range p {
		if pt.Radius == 0 {
			n++
		}
	}
	return n
}

// Revolve sweeps the profile around the vertical Z axis in the given
// number of equal angular steps (minimum 3), producing a solid of
// revolution.
//
// Each non-pole profile point becomes one ring of steps vertices; a
// zero-radius point collapses its ring to a single pole vertex shared
// across all angular steps. Adjacent rings are connected by quads, and
// a pole next to a ring produces a triangle fan. When both endpoint
// radii are 0 the result is a closed 2-manifold with
// steps*(len(p)-poles) + poles vertices.
func Revolve(name string, p Profile, steps int) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if steps < 3 {
		return nil, fmt.Errorf("%w: %d angular steps, need at least 3", ErrCurveTopology, steps)
	}

	m := New(name)
	angStep := 2 * math32.Pi / float32(steps)

	// rings[i] holds one index for a pole point, steps indices otherwise.
	rings := make([][]int, len(p))
	for i, pt := range p {
		if pt.Radius == 0 {
			rings[i] = []int{m.AddVertex(math32.Vec3(0, 0, pt.Height))}
			continue
		}
		ring := make([]int, steps)
		for s := 0; s < steps; s++ {
			ang := float32(s) * angStep
			ring[s] = m.AddVertex(math32.Vec3(
				pt.Radius*math32.Cos(ang),
				pt.Radius*math32.Sin(ang),
				pt.Height,
			))
		}
		rings[i] = ring
	}

	for i := 0; i+1 < len(p); i++ {
		lo, hi := rings[i], rings[i+1]
		switch {
		case len(lo) == 1 && len(hi) == 1:
			// consecutive poles share the axis; nothing to connect
		case len(lo) == 1:
			// bottom fan, wound so the normal faces down and out
			for s := 0; s < steps; s++ {
				m.AddFace(lo[0], hi[(s+1)%steps], hi[s])
			}
		case len(hi) == 1:
			// top fan
			for s := 0; s < steps; s++ {
				m.AddFace(hi[0], lo[s], lo[(s+1)%steps])
			}
		default:
			// side wall quads, counter-clockwise seen from outside
			for s := 0; s < steps; s++ {
				sn := (s + 1) % steps
				m.AddFace(lo[s], lo[sn], hi[sn], hi[s])
			}
		}
	}
	return m, nil
}
