// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an editable polygon mesh representation and the
// procedural builders and modifiers that operate on it: solid-of-revolution
// sweeps, height-band region selection, emboss (subdivide + inset + extrude),
// noise displacement, solidify and bevel.
//
// Unlike a render-ready indexed triangle mesh, [Mesh] keeps faces as ordered
// tuples of 3 or 4 vertex indices so that topology edits remain tractable;
// triangulation happens at export time via [Mesh.Triangulate].
package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/blenderlab/forge/math32"
)

// ErrCurveTopology indicates a profile curve that cannot be revolved
// into a solid (too few points or a negative radius).
var ErrCurveTopology = errors.New("profile curve is not revolvable")

// ErrSelectionEmpty indicates a region selection that matched no faces.
// Modifiers treat this as a non-fatal no-op and callers are expected to
// log and continue.
var ErrSelectionEmpty = errors.New("region selection matched no faces")

// Face is an ordered tuple of 3 or 4 vertex indices, wound
// counter-clockwise as seen from outside the solid.
type Face []int

// Mesh is an editable polygon mesh: a set of vertex positions and the
// faces that index them. All builders in this package produce meshes
// with consistent outward winding.
type Mesh struct {

	// Name is the name of the mesh, carried through to exporters.
	Name string

	// Vertices are the 3D vertex positions.
	Vertices []math32.Vector3

	// Faces index into Vertices, 3 or 4 indices per face.
	Faces []Face
}

// New returns a new empty mesh with the given name.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:     m.Name,
		Vertices: slices.Clone(m.Vertices),
		Faces:    make([]Face, len(m.Faces)),
	}
	for i, f := range m.Faces {
		c.Faces[i] = slices.Clone(f)
	}
	return c
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math32.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face from the given vertex indices.
func (m *Mesh) AddFace(idxs ...int) {
	m.Faces = append(m.Faces, Face(idxs))
}

// Validate checks the structural invariants of the mesh: every face has
// 3 or 4 vertices, all indices are in range, and no two faces reference
// the same vertex set.
func (m *Mesh) Validate() error {
	seen := make(map[[4]int]int, len(m.Faces))
	for fi, f := range m.Faces {
		if len(f) != 3 && len(f) != 4 {
			return fmt.Errorf("mesh %q: face %d has %d vertices, want 3 or 4", m.Name, fi, len(f))
		}
		var sig [4]int
		sig[3] = -1
		for i, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("mesh %q: face %d references vertex %d of %d", m.Name, fi, vi, len(m.Vertices))
			}
			sig[i] = vi
		}
		slices.Sort(sig[:len(f)])
		if prev, ok := seen[sig]; ok {
			return fmt.Errorf("mesh %q: face %d duplicates face %d", m.Name, fi, prev)
		}
		seen[sig] = fi
	}
	return nil
}

// FaceCentroid returns the average position of the given face's vertices.
func (m *Mesh) FaceCentroid(f Face) math32.Vector3 {
	var c math32.Vector3
	for _, vi := range f {
		c = c.Add(m.Vertices[vi])
	}
	return c.DivScalar(float32(len(f)))
}

// FaceNormal returns the unit normal of the given face, using Newell's
// method so that non-planar quads still yield a stable direction.
func (m *Mesh) FaceNormal(f Face) math32.Vector3 {
	var n math32.Vector3
	for i, vi := range f {
		cur := m.Vertices[vi]
		next := m.Vertices[f[(i+1)%len(f)]]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normal()
}

// VertexNormals returns per-vertex normals computed as the normalized
// sum of the incident face normals.
func (m *Mesh) VertexNormals() []math32.Vector3 {
	norms := make([]math32.Vector3, len(m.Vertices))
	for _, f := range m.Faces {
		fn := m.FaceNormal(f)
		for _, vi := range f {
			norms[vi] = norms[vi].Add(fn)
		}
	}
	for i := range norms {
		norms[i] = norms[i].Normal()
	}
	return norms
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range m.Vertices {
		bb.ExpandByPoint(v)
	}
	return bb
}

// Triangulate returns the triangle index list for the mesh, splitting
// each quad into two triangles by fanning from its first vertex.
func (m *Mesh) Triangulate() [][3]int {
	tris := make([][3]int, 0, len(m.Faces)*2)
	for _, f := range m.Faces {
		for i := 1; i+1 < len(f); i++ {
			tris = append(tris, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// edge is an undirected edge key: a < b.
type edge struct {
	a, b int
}

// edgeOf returns the canonical undirected key for the edge (a, b).
func edgeOf(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// edgeUses returns, for every edge in the mesh, the number of faces
// that use it.
func (m *Mesh) edgeUses() map[edge]int {
	uses := make(map[edge]int)
	for _, f := range m.Faces {
		for i, vi := range f {
			uses[edgeOf(vi, f[(i+1)%len(f)])]++
		}
	}
	return uses
}

// BoundaryEdges returns the number of edges used by exactly one face.
// A closed 2-manifold has zero boundary edges.
func (m *Mesh) BoundaryEdges() int {
	n := 0
	for _, uses := range m.edgeUses() {
		if uses == 1 {
			n++
		}
	}
	return n
}
