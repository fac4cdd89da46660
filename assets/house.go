// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
	"github.com/blenderlab/forge/shading"
)

// windowPositions are the four window slots, two per long wall.
var windowPositions = []math32.Vector3{
	{X: -1.5, Y: -4.01, Z: 1.6},
	{X: 1.5, Y: -4.01, Z: 1.6},
	{X: -1.5, Y: 4.01, Z: 1.6},
	{X: 1.5, Y: 4.01, Z: 1.6},
}

// House builds the fixed-geometry house set: hollow walls, a rotated
// roof slab, a beveled door, four glass windows and a ground plane,
// all appended to sc. Unlike the seeded tree family the house has no
// variation; every call produces the same eight objects.
func House(b *shading.Builder, sc *scene.Scene) error {
	wallMat, err := b.Solid("Wall", math32.Vec4(0.8, 0.7, 0.6, 1), 0.9)
	if err != nil {
		return fmt.Errorf("house: %w", err)
	}
	roofMat, err := b.Solid("Roof", math32.Vec4(0.3, 0.05, 0.05, 1), 0.4)
	if err != nil {
		return fmt.Errorf("house: %w", err)
	}
	doorMat, err := b.Solid("Door", math32.Vec4(0.2, 0.1, 0.05, 1), 0.6)
	if err != nil {
		return fmt.Errorf("house: %w", err)
	}
	glassMat, err := b.Glass("Glass", math32.Vec4(0.6, 0.8, 1.0, 1), 0.02)
	if err != nil {
		return fmt.Errorf("house: %w", err)
	}
	groundMat, err := b.Solid("Ground", math32.Vec4(0.2, 0.25, 0.2, 1), 1.0)
	if err != nil {
		return fmt.Errorf("house: %w", err)
	}

	walls := scene.NewMeshObject("Walls", mesh.Box("Walls", math32.Vec3(1, 1, 1))).
		AddModifier(&mesh.Solidify{Thickness: 0.15}).
		AttachMaterial(wallMat)
	walls.Transform = scene.At(math32.Vec3(0, 0, 1))
	walls.Transform.Scale = math32.Vec3(3, 4, 1.5)

	roof := scene.NewMeshObject("Roof", mesh.Box("Roof", math32.Vec3(1, 1, 1))).
		AttachMaterial(roofMat)
	roof.Transform = scene.At(math32.Vec3(0, 0, 3))
	roof.Transform.Scale = math32.Vec3(3.2, 4.2, 0.6)
	roof.Transform.Rot.X = math32.DegToRad(45)

	door := scene.NewMeshObject("Door", mesh.Box("Door", math32.Vec3(1, 1, 1))).
		AddModifier(&mesh.Bevel{Width: 0.02, Segments: 3}).
		AttachMaterial(doorMat)
	door.Transform = scene.At(math32.Vec3(0, -4.01, 0.9))
	door.Transform.Scale = math32.Vec3(0.7, 0.1, 1.0)

	objs := []*scene.Object{walls, roof, door}
	for i, pos := range windowPositions {
		win := scene.NewMeshObject(fmt.Sprintf("Window_%d", i), mesh.Box("Window", math32.Vec3(1, 1, 1))).
			AttachMaterial(glassMat)
		win.Transform = scene.At(pos)
		win.Transform.Scale = math32.Vec3(0.6, 0.1, 0.5)
		objs = append(objs, win)
	}

	ground := scene.NewMeshObject("Ground", mesh.Plane("Ground", 20)).
		AttachMaterial(groundMat)
	ground.Transform = scene.At(math32.Vec3(0, 0, -0.01))
	objs = append(objs, ground)

	sc.Add(objs...)
	return nil
}
