// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"

	"github.com/blenderlab/forge/math32"
)

// Bevel approximates rounded edges by relaxing each vertex toward the
// mean of its edge-connected neighbors, at most Width per segment. This
// rounds corners without changing topology, which is adequate at export
// scale; it is not a full edge-split bevel.
type Bevel struct {

	// Width is the maximum distance each vertex moves per segment.
	Width float32

	// Segments is the number of relaxation passes; 0 means 1.
	Segments int
}

func (b *Bevel) Name() string { return "Bevel" }

// Apply edits the mesh in place.
func (b *Bevel) Apply(m *Mesh) error {
	segs := b.Segments
	if segs <= 0 {
		segs = 1
	}
	neighbors := make(map[int][]int, len(m.Vertices))
	for e := range m.edgeUses() {
		neighbors[e.a] = append(neighbors[e.a], e.b)
		neighbors[e.b] = append(neighbors[e.b], e.a)
	}
	for pass := 0; pass < segs; pass++ {
		prev := slices.Clone(m.Vertices)
		for vi, ns := range neighbors {
			if len(ns) == 0 {
				continue
			}
			var avg math32.Vector3
			for _, ni := range ns {
				avg = avg.Add(prev[ni])
			}
			avg = avg.DivScalar(float32(len(ns)))
			delta := avg.Sub(prev[vi])
			d := delta.Length()
			if d == 0 {
				continue
			}
			step := math32.Min(b.Width, d)
			m.Vertices[vi] = prev[vi].Add(delta.MulScalar(step / d))
		}
	}
	return nil
}
