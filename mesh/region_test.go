// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bandMesh is a 1x4 strip of stacked quads at z = 0..4, one quad per
// unit band.
func bandMesh(t *testing.T) *Mesh {
	t.Helper()
	p := Profile{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}}
	m, err := Revolve("strip", p, 4)
	require.NoError(t, err)
	return m
}

func TestHeightRangeSelect(t *testing.T) {
	m := bandMesh(t)

	// rows span z bands [0,1], [1,2], [2,3], [3,4], 4 faces each
	sel := HeightRange{Min: 1, Max: 3}.Select(m)
	assert.Len(t, sel, 4)
	for _, fi := range sel {
		for _, vi := range m.Faces[fi] {
			z := m.Vertices[vi].Z
			assert.GreaterOrEqual(t, z, float32(1))
			assert.Less(t, z, float32(3))
		}
	}
}

func TestHeightRangeStrictBounds(t *testing.T) {
	m := bandMesh(t)

	// Max is exclusive: a face touching z=2 from below is excluded
	sel := HeightRange{Min: 0, Max: 2}.Select(m)
	assert.Len(t, sel, 4)

	// straddling faces never select
	sel = HeightRange{Min: 0.5, Max: 1.5}.Select(m)
	assert.Empty(t, sel)
}

func TestHeightRangeSelectPure(t *testing.T) {
	m := bandMesh(t)
	before := m.Clone()

	hr := HeightRange{Min: 1, Max: 4.5}
	first := hr.Select(m)
	second := hr.Select(m)

	assert.Empty(t, cmp.Diff(first, second))
	assert.Empty(t, cmp.Diff(before, m))
}

func TestHeightRangeEmpty(t *testing.T) {
	m := bandMesh(t)
	assert.Empty(t, HeightRange{Min: 10, Max: 20}.Select(m))
}
