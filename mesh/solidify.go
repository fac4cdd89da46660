// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Solidify gives a surface wall thickness by duplicating it as an inner
// shell offset along the inverted vertex normals, with reversed winding
// so both shells face outward.
type Solidify struct {

	// Thickness is the distance between the outer and inner shells.
	Thickness float32
}

func (s *Solidify) Name() string { return "Solidify" }

// Apply edits the mesh in place.
func (s *Solidify) Apply(m *Mesh) error {
	norms := m.VertexNormals()
	base := len(m.Vertices)
	for i, v := range m.Vertices[:base] {
		m.AddVertex(v.Sub(norms[i].MulScalar(s.Thickness)))
	}
	outer := len(m.Faces)
	for _, f := range m.Faces[:outer] {
		inner := make(Face, len(f))
		for i, vi := range f {
			// reversed order flips the winding for the inner shell
			inner[len(f)-1-i] = vi + base
		}
		m.Faces = append(m.Faces, inner)
	}
	return nil
}
