// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
	"github.com/blenderlab/forge/shading"
)

func TestBottleProfile(t *testing.T) {
	require.NoError(t, BottleProfile.Validate())
	require.Len(t, BottleProfile, 17)

	// both ends sit on the axis so the revolved body is watertight
	assert.Zero(t, BottleProfile[0].Radius)
	assert.Zero(t, BottleProfile[len(BottleProfile)-1].Radius)
}

func TestBottleBodyGeometry(t *testing.T) {
	m, err := mesh.Revolve("BottleBody", BottleProfile, bottleSteps)
	require.NoError(t, err)

	// 15 rings of 64 plus two poles
	assert.Len(t, m.Vertices, 64*15+2)
	assert.Equal(t, 0, m.BoundaryEdges())
	assert.NoError(t, m.Validate())
}

func TestBottleEmbossBand(t *testing.T) {
	m, err := mesh.Revolve("BottleBody", BottleProfile, bottleSteps)
	require.NoError(t, err)

	// the grip band covers the four quad rows between z=0.012 and z=0.095
	sel := BottleEmboss.Band.Select(m)
	assert.Len(t, sel, 4*bottleSteps)
}

func TestBottleScene(t *testing.T) {
	sc := scene.NewScene()
	b := shading.NewBuilder(shading.VersionCurrent)
	require.NoError(t, Bottle(b, sc))

	// body, cap, three lights, camera
	assert.Equal(t, 6, sc.Len())

	sel := scene.ExportSelection(sc)
	require.Len(t, sel, 2)
	assert.Equal(t, "BottleBody", sel[0].Name)
	assert.Equal(t, "BottleCap", sel[1].Name)

	body := sel[0]
	require.Len(t, body.Materials, 1)
	assert.Equal(t, "MaroonBottle", body.Materials[0].Name)

	em, err := body.EvaluatedMesh()
	require.NoError(t, err)
	assert.Greater(t, len(em.Vertices), 64*15+2)
	assert.NoError(t, em.Validate())

	capMesh, err := sel[1].WorldMesh()
	require.NoError(t, err)
	assert.Equal(t, 0, capMesh.BoundaryEdges())
	// the cap sits on the bottle neck
	assert.Greater(t, capMesh.Bounds().Center().Z, float32(0.23))
}

func TestBottleLightsAndCamera(t *testing.T) {
	sc := scene.NewScene()
	require.NoError(t, Bottle(shading.NewBuilder(shading.VersionCurrent), sc))

	var lights, cameras int
	for _, ob := range sc.Objects() {
		switch ob.Kind {
		case scene.KindLight:
			lights++
		case scene.KindCamera:
			cameras++
			assert.Equal(t, float32(85), ob.Camera.FocalLength)
		}
	}
	assert.Equal(t, 3, lights)
	assert.Equal(t, 1, cameras)
}
