// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blenderlab/forge/math32"
)

func TestValidate(t *testing.T) {
	m := New("t")
	for _, v := range []math32.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}} {
		m.AddVertex(v)
	}
	m.AddFace(0, 1, 2, 3)
	assert.NoError(t, m.Validate())

	bad := m.Clone()
	bad.AddFace(0, 1)
	assert.Error(t, bad.Validate())

	bad = m.Clone()
	bad.AddFace(0, 1, 9)
	assert.Error(t, bad.Validate())

	bad = m.Clone()
	bad.AddFace(3, 2, 1, 0) // same vertex set, different winding
	assert.Error(t, bad.Validate())
}

func TestTriangulate(t *testing.T) {
	m := New("t")
	for _, v := range []math32.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}} {
		m.AddVertex(v)
	}
	m.AddFace(0, 1, 2, 3)
	m.AddFace(0, 1, 2)
	tris := m.Triangulate()
	require.Len(t, tris, 3)
	assert.Equal(t, [3]int{0, 1, 2}, tris[0])
	assert.Equal(t, [3]int{0, 2, 3}, tris[1])
	assert.Equal(t, [3]int{0, 1, 2}, tris[2])
}

func TestFaceNormal(t *testing.T) {
	m := New("t")
	for _, v := range []math32.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}} {
		m.AddVertex(v)
	}
	m.AddFace(0, 1, 2, 3)
	n := m.FaceNormal(m.Faces[0])
	assert.InDelta(t, 0, n.X, 1e-6)
	assert.InDelta(t, 0, n.Y, 1e-6)
	assert.InDelta(t, 1, n.Z, 1e-6)
}

func TestBoundaryEdges(t *testing.T) {
	box := Box("box", math32.Vec3(1, 1, 1))
	assert.Equal(t, 0, box.BoundaryEdges())

	plane := Plane("plane", 1)
	assert.Equal(t, 4, plane.BoundaryEdges())
}

func TestCloneIsDeep(t *testing.T) {
	m := Box("box", math32.Vec3(1, 1, 1))
	c := m.Clone()
	c.Vertices[0].X = 99
	c.Faces[0][0] = 7
	assert.Equal(t, float32(-0.5), m.Vertices[0].X)
	assert.Equal(t, 0, m.Faces[0][0])
}

func TestBounds(t *testing.T) {
	m := Box("box", math32.Vec3(2, 4, 6))
	bb := m.Bounds()
	assert.Equal(t, math32.Vec3(2, 4, 6), bb.Size())
	assert.Equal(t, math32.Vector3{}, bb.Center())
}
