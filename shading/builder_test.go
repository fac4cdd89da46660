// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blenderlab/forge/math32"
)

func TestPlasticTemplate(t *testing.T) {
	b := NewBuilder(Version4)
	g, err := b.Plastic("MaroonBottle", math32.Vec4(0.48, 0.07, 0.12, 1), 0.22, 0.55, 1.49)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	bsdf := g.Surface()
	require.NotNil(t, bsdf)

	c, ok := bsdf.InputColor("Base Color")
	require.True(t, ok)
	assert.Equal(t, math32.Vec4(0.48, 0.07, 0.12, 1), c)

	r, ok := bsdf.InputFloat("Roughness")
	require.True(t, ok)
	assert.Equal(t, float32(0.22), r)

	// version 4 stores transmission under its renamed socket
	tr, ok := bsdf.InputFloat("Transmission Weight")
	require.True(t, ok)
	assert.Equal(t, float32(0.55), tr)
	_, ok = bsdf.InputFloat("Transmission")
	assert.False(t, ok)

	// the bump chain is wired through to the surface normal
	assert.NotNil(t, g.NodeOfKind(WaveTexture))
	assert.NotNil(t, g.NodeOfKind(Bump))
}

func TestPlasticTemplateVersion3(t *testing.T) {
	b := NewBuilder(Version3)
	g, err := b.Plastic("m", math32.Vec4(1, 1, 1, 1), 0.5, 0.3, 1.45)
	require.NoError(t, err)

	tr, ok := g.Surface().InputFloat("Transmission")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), tr)
}

func TestBarkTemplate(t *testing.T) {
	b := NewBuilder(VersionCurrent)
	g, err := b.Bark("BarkDark", math32.Vec4(0.2, 0.15, 0.1, 1), math32.Vec4(0.35, 0.28, 0.2, 1))
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.NotNil(t, g.NodeOfKind(NoiseTexture))
	assert.NotNil(t, g.NodeOfKind(ColorRamp))

	r, ok := g.Surface().InputFloat("Roughness")
	require.True(t, ok)
	assert.Equal(t, float32(0.7), r)
}

func TestLeafTemplate(t *testing.T) {
	b := NewBuilder(Version4)
	g, err := b.Leaf("LeafGreen", math32.Vec4(0.1, 0.4, 0.1, 1))
	require.NoError(t, err)

	ss, ok := g.Surface().InputFloat("Subsurface Weight")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), ss)
}

func TestSolidAndGlassTemplates(t *testing.T) {
	b := NewBuilder(VersionCurrent)

	g, err := b.Solid("Wall", math32.Vec4(0.8, 0.7, 0.6, 1), 0.9)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)

	gl, err := b.Glass("Glass", math32.Vec4(0.6, 0.8, 1, 1), 0.02)
	require.NoError(t, err)
	tr, ok := gl.Surface().InputFloat("Transmission Weight")
	require.True(t, ok)
	assert.Equal(t, float32(1), tr)
}
