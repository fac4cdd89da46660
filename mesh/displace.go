// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Displace moves every vertex along its normal by a seeded smooth noise
// field, breaking up perfectly regular surfaces (foliage clumps, cap
// knurling). The same (Seed, Scale, Strength) on the same mesh always
// produces the same result.
type Displace struct {

	// Strength is the maximum displacement distance.
	Strength float32

	// Scale is the spatial frequency of the noise field; 0 means 1.
	Scale float32

	// Seed selects the noise field.
	Seed int64
}

func (d *Displace) Name() string { return "Displace" }

// Apply edits the mesh in place.
func (d *Displace) Apply(m *Mesh) error {
	if len(m.Vertices) == 0 {
		return nil
	}
	scale := d.Scale
	if scale == 0 {
		scale = 1
	}
	noise := opensimplex.New(d.Seed)
	norms := m.VertexNormals()
	for i, v := range m.Vertices {
		n := noise.Eval3(float64(v.X*scale), float64(v.Y*scale), float64(v.Z*scale))
		m.Vertices[i] = v.Add(norms[i].MulScalar(d.Strength * float32(n)))
	}
	return nil
}
