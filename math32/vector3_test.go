// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Ops(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)

	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
}

func TestVector3Normal(t *testing.T) {
	n := Vec3(3, 0, 4).Normal()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Z, 1e-6)
	assert.InDelta(t, 1, n.Length(), 1e-6)

	// zero vector stays zero
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestVector3Rotate(t *testing.T) {
	v := Vec3(1, 0, 0).RotateZ(DegToRad(90))
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 1, v.Y, 1e-6)

	v = Vec3(0, 1, 0).RotateX(DegToRad(90))
	assert.InDelta(t, 0, v.Y, 1e-6)
	assert.InDelta(t, 1, v.Z, 1e-6)

	v = Vec3(0, 0, 1).RotateY(DegToRad(90))
	assert.InDelta(t, 1, v.X, 1e-6)
	assert.InDelta(t, 0, v.Z, 1e-6)
}

func TestLerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(2, 4, 6)
	assert.Equal(t, Vec3(1, 2, 3), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(5, 0, 1))
	assert.Equal(t, float32(0), Clamp(-5, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}
