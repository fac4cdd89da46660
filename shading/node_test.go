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

func TestGraphValidateSingleOutput(t *testing.T) {
	g := NewGraph("m")
	assert.Error(t, g.Validate(), "no output node")

	g.AddNode(Output, "Out")
	assert.NoError(t, g.Validate())

	g.AddNode(Output, "Out2")
	assert.Error(t, g.Validate(), "two output nodes")
}

func TestGraphValidateCycle(t *testing.T) {
	g := NewGraph("m")
	g.AddNode(Output, "Out")
	a := g.AddNode(Mapping, "A")
	b := g.AddNode(Mapping, "B")
	require.NoError(t, g.Connect(a, "Vector", b, "Vector"))
	assert.NoError(t, g.Validate())

	require.NoError(t, g.Connect(b, "Vector", a, "Vector"))
	assert.Error(t, g.Validate())
}

func TestConnectUnknownSockets(t *testing.T) {
	g := NewGraph("m")
	wave := g.AddNode(WaveTexture, "Wave")
	bump := g.AddNode(Bump, "Bump")

	assert.NoError(t, g.Connect(wave, "Color", bump, "Height"))
	assert.Error(t, g.Connect(wave, "Nope", bump, "Height"))
	assert.ErrorIs(t, g.Connect(wave, "Color", bump, "Nope"), ErrCapabilityMissing)
}

func TestSetInput(t *testing.T) {
	g := NewGraph("m")
	wave := g.AddNode(WaveTexture, "Wave")

	require.NoError(t, wave.SetInput("Scale", float32(14)))
	v, ok := wave.InputFloat("Scale")
	require.True(t, ok)
	assert.Equal(t, float32(14), v)

	assert.Error(t, wave.SetInput("Scale", 14), "untyped int is not a socket value")
	assert.ErrorIs(t, wave.SetInput("Nope", float32(1)), ErrCapabilityMissing)

	bsdf := g.AddNode(Principled, "Surface")
	require.NoError(t, bsdf.SetInput("Base Color", math32.Vec4(1, 0, 0, 1)))
	c, ok := bsdf.InputColor("Base Color")
	require.True(t, ok)
	assert.Equal(t, float32(1), c.X)
}

func TestCapabilityTable(t *testing.T) {
	v3 := ResolveCapabilities(Version3)
	s, err := v3.Socket("Transmission")
	require.NoError(t, err)
	assert.Equal(t, "Transmission", s)

	v4 := ResolveCapabilities(Version4)
	s, err = v4.Socket("Transmission")
	require.NoError(t, err)
	assert.Equal(t, "Transmission Weight", s)

	s, err = v4.Socket("Subsurface")
	require.NoError(t, err)
	assert.Equal(t, "Subsurface Weight", s)

	_, err = v4.Socket("Sheen Madness")
	assert.ErrorIs(t, err, ErrCapabilityMissing)
}
