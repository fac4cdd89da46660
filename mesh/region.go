// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// HeightRange selects the faces of a mesh whose vertices all lie in the
// half-open height band [Min, Max). Faces straddling a bound are
// excluded entirely; this strict policy deliberately avoids visible
// seams at panel edges.
//
// Selection is a derived set, recomputed on demand and never stored on
// the mesh.
type HeightRange struct {
	Min float32
	Max float32
}

// Select returns the indices of faces entirely inside the band, in
// ascending face order. It is pure: identical (mesh, bounds) inputs
// always yield an identical face set.
func (hr HeightRange) Select(m *Mesh) []int {
	var faces []int
	for fi, f := range m.Faces {
		inside := true
		for _, vi := range f {
			z := m.Vertices[vi].Z
			if z < hr.Min || z >= hr.Max {
				inside = false
				break
			}
		}
		if inside {
			faces = append(faces, fi)
		}
	}
	return faces
}
