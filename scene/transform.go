// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/blenderlab/forge/math32"

// Transform places an object in world space: scale, then XYZ euler
// rotation in radians, then translation.
type Transform struct {
	Pos   math32.Vector3
	Rot   math32.Vector3
	Scale math32.Vector3
}

// IdentityTransform returns the identity transform (unit scale).
func IdentityTransform() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// At returns an identity transform translated to the given position.
func At(pos math32.Vector3) Transform {
	t := IdentityTransform()
	t.Pos = pos
	return t
}

// ApplyTo transforms the given local-space point into world space.
func (t Transform) ApplyTo(v math32.Vector3) math32.Vector3 {
	v = v.Mul(t.Scale)
	v = v.RotateX(t.Rot.X)
	v = v.RotateY(t.Rot.Y)
	v = v.RotateZ(t.Rot.Z)
	return v.Add(t.Pos)
}
