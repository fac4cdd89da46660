// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/blenderlab/forge/math32"

// Emboss fakes raised or recessed panel detail on a band of a mesh.
// It selects the faces inside Band, grid-subdivides each selected quad
// Cuts times per edge (edge vertices are shared between adjacent
// selected faces), then insets every resulting face inward by Thickness
// and offsets the inset face along its normal by Depth (negative means
// recessed).
//
// Vertices and faces outside the selected band are never touched.
// Edges on the selection boundary are subdivided only on the selected
// side, leaving coincident but unconnected vertices along the seam.
type Emboss struct {

	// Band is the height band whose faces are embossed.
	Band HeightRange

	// Cuts is the number of subdivision cuts per edge; 0 disables
	// subdivision.
	Cuts int

	// Thickness is the absolute inset distance toward each face center.
	Thickness float32

	// Depth is the offset of the inset face along the face normal;
	// negative pushes the panel inward.
	Depth float32
}

func (em *Emboss) Name() string { return "Emboss" }

// Apply edits the mesh in place. If the band selects no faces it
// returns [ErrSelectionEmpty] and leaves the mesh unchanged.
func (em *Emboss) Apply(m *Mesh) error {
	sel := em.Band.Select(m)
	if len(sel) == 0 {
		return ErrSelectionEmpty
	}
	region := subdivideQuads(m, sel, em.Cuts)
	insetExtrude(m, region, em.Thickness, em.Depth)
	return nil
}

// subdivideQuads replaces each selected quad with a (cuts+1)^2 grid of
// quads, sharing the cut vertices along edges common to two selected
// faces. Non-quad faces in the selection pass through unsubdivided.
// Selected faces move to the tail of m.Faces; the returned indices
// identify them there.
func subdivideQuads(m *Mesh, sel []int, cuts int) []int {
	selSet := make(map[int]bool, len(sel))
	for _, fi := range sel {
		selSet[fi] = true
	}

	n := cuts + 1
	edgePoints := make(map[edge][]int)

	// edgePts returns the interior cut vertices along edge (a, b) in
	// traversal order, creating them once per undirected edge.
	edgePts := func(a, b int) []int {
		e := edgeOf(a, b)
		pts, ok := edgePoints[e]
		if !ok {
			pts = make([]int, cuts)
			va, vb := m.Vertices[e.a], m.Vertices[e.b]
			for k := 1; k <= cuts; k++ {
				pts[k-1] = m.AddVertex(va.Lerp(vb, float32(k)/float32(n)))
			}
			edgePoints[e] = pts
		}
		if a == e.a {
			return pts
		}
		rev := make([]int, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		return rev
	}

	kept := make([]Face, 0, len(m.Faces))
	var region []Face
	for fi, f := range m.Faces {
		switch {
		case !selSet[fi]:
			kept = append(kept, f)
		case len(f) != 4 || cuts <= 0:
			region = append(region, f)
		default:
			// grid[i][j]: i runs along f0->f1, j along f0->f3
			grid := make([][]int, n+1)
			for i := range grid {
				grid[i] = make([]int, n+1)
			}
			grid[0][0], grid[n][0], grid[n][n], grid[0][n] = f[0], f[1], f[2], f[3]
			for i, p := range edgePts(f[0], f[1]) {
				grid[i+1][0] = p
			}
			for i, p := range edgePts(f[3], f[2]) {
				grid[i+1][n] = p
			}
			for j, p := range edgePts(f[0], f[3]) {
				grid[0][j+1] = p
			}
			for j, p := range edgePts(f[1], f[2]) {
				grid[n][j+1] = p
			}
			v0, v1 := m.Vertices[f[0]], m.Vertices[f[1]]
			v2, v3 := m.Vertices[f[2]], m.Vertices[f[3]]
			for i := 1; i < n; i++ {
				u := float32(i) / float32(n)
				for j := 1; j < n; j++ {
					w := float32(j) / float32(n)
					pos := bilinear(v0, v1, v2, v3, u, w)
					grid[i][j] = m.AddVertex(pos)
				}
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					region = append(region, Face{grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1]})
				}
			}
		}
	}

	m.Faces = append(kept, region...)
	idxs := make([]int, len(region))
	for i := range region {
		idxs[i] = len(kept) + i
	}
	return idxs
}

// bilinear interpolates inside the quad (v0, v1, v2, v3), with u along
// v0->v1 and w along v0->v3.
func bilinear(v0, v1, v2, v3 math32.Vector3, u, w float32) math32.Vector3 {
	bottom := v0.Lerp(v1, u)
	top := v3.Lerp(v2, u)
	return bottom.Lerp(top, w)
}

// insetExtrude insets each listed face toward its centroid by thickness,
// offsets the inset copy along the face normal by depth, and bridges the
// rim with side quads. The original rim vertices keep their positions.
func insetExtrude(m *Mesh, faceIdxs []int, thickness, depth float32) {
	for _, fi := range faceIdxs {
		f := m.Faces[fi]
		c := m.FaceCentroid(f)
		nrm := m.FaceNormal(f)
		inner := make(Face, len(f))
		for k, vi := range f {
			v := m.Vertices[vi]
			toCenter := c.Sub(v)
			t := float32(1)
			if d := toCenter.Length(); d > 0 {
				t = math32.Min(1, thickness/d)
			}
			inner[k] = m.AddVertex(v.Add(toCenter.MulScalar(t)).Add(nrm.MulScalar(depth)))
		}
		for k := range f {
			kn := (k + 1) % len(f)
			m.AddFace(f[k], f[kn], inner[kn], inner[k])
		}
		m.Faces[fi] = inner
	}
}
