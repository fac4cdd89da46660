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

// BottleProfile is the half cross-section of the bottle body, bottom to
// top, radius vs height in meters. The bottle is about 24cm tall with a
// 3.6cm max radius; first and last points sit on the axis so the
// revolved surface closes at both ends.
var BottleProfile = mesh.Profile{
	{Radius: 0.000, Height: 0.000}, // centre base
	{Radius: 0.034, Height: 0.000}, // outer base edge
	{Radius: 0.036, Height: 0.005}, // base bevel out
	{Radius: 0.035, Height: 0.012}, // base cylinder start
	{Radius: 0.036, Height: 0.030}, // slight flare at bottom
	{Radius: 0.035, Height: 0.055}, // lower body
	{Radius: 0.036, Height: 0.080}, // lower mid
	{Radius: 0.036, Height: 0.095}, // widest point (grip top)
	{Radius: 0.034, Height: 0.110}, // upper mid slight taper
	{Radius: 0.033, Height: 0.135}, // shoulder start
	{Radius: 0.028, Height: 0.165}, // shoulder curve
	{Radius: 0.020, Height: 0.195}, // neck base
	{Radius: 0.017, Height: 0.215}, // neck shaft
	{Radius: 0.017, Height: 0.225}, // neck top (thread base)
	{Radius: 0.018, Height: 0.228}, // thread lip out
	{Radius: 0.016, Height: 0.232}, // thread lip in
	{Radius: 0.000, Height: 0.232}, // close top
}

const (
	bottleSteps = 64

	capSegs   = 48
	capRadius = 0.019
	capDepth  = 0.022
	capCenter = 0.243
)

// BottleEmboss is the panel emboss applied to the lower body: every
// face fully inside the grip band is grid-subdivided and inset inward.
var BottleEmboss = mesh.Emboss{
	Band:      mesh.HeightRange{Min: 0.010, Max: 0.096},
	Cuts:      2,
	Thickness: 0.0018,
	Depth:     -0.0010,
}

// Bottle builds the embossed maroon bottle set: revolved body with the
// lower-panel emboss, a knurled screw cap, a three-light studio rig and
// a portrait camera, all appended to sc.
func Bottle(b *shading.Builder, sc *scene.Scene) error {
	bodyMat, err := b.Plastic("MaroonBottle", math32.Vec4(0.48, 0.07, 0.12, 1), 0.22, 0.55, 1.49)
	if err != nil {
		return fmt.Errorf("bottle: %w", err)
	}
	capMat, err := b.Plastic("CapMaterial", math32.Vec4(0.28, 0.04, 0.08, 1), 0.55, 0, 1.49)
	if err != nil {
		return fmt.Errorf("bottle: %w", err)
	}

	bodyMesh, err := mesh.Revolve("BottleBody", BottleProfile, bottleSteps)
	if err != nil {
		return fmt.Errorf("bottle: %w", err)
	}
	emboss := BottleEmboss
	body := scene.NewMeshObject("BottleBody", bodyMesh).
		AddModifier(&emboss).
		AttachMaterial(bodyMat)

	capMesh, err := mesh.Cone("BottleCap", capDepth, capRadius, capRadius, capSegs)
	if err != nil {
		return fmt.Errorf("bottle: %w", err)
	}
	capObj := scene.NewMeshObject("BottleCap", capMesh).
		AddModifier(&mesh.Bevel{Width: 0.002, Segments: 3}).
		AddModifier(&mesh.Displace{Strength: 0.0008, Scale: 1 / 0.4, Seed: 1}).
		AttachMaterial(capMat)
	// cylinder base is at z=0; place its center at the neck top
	capObj.Transform = scene.At(math32.Vec3(0, 0, capCenter-capDepth/2))

	key := scene.NewLightObject("KeyLight", &scene.Light{
		Kind: scene.AreaLight, Energy: 400, Size: 0.6,
		Color: math32.Vec4(1, 1, 1, 1),
	})
	key.Transform = scene.At(math32.Vec3(0.4, -0.5, 0.4))
	key.Transform.Rot = math32.Vec3(math32.DegToRad(50), 0, math32.DegToRad(35))

	fill := scene.NewLightObject("FillLight", &scene.Light{
		Kind: scene.AreaLight, Energy: 120, Size: 1.0,
		Color: math32.Vec4(1, 1, 1, 1),
	})
	fill.Transform = scene.At(math32.Vec3(-0.35, -0.3, 0.25))

	rim := scene.NewLightObject("RimLight", &scene.Light{
		Kind: scene.SpotLight, Energy: 250,
		SpotSize: math32.DegToRad(40), SpotBlend: 0.3,
		Color: math32.Vec4(1, 1, 1, 1),
	})
	rim.Transform = scene.At(math32.Vec3(0.1, 0.5, 0.4))
	rim.Transform.Rot = math32.Vec3(math32.DegToRad(130), 0, math32.DegToRad(15))

	cam := scene.NewCameraObject("BottleCam", &scene.Camera{FocalLength: 85})
	cam.Transform = scene.At(math32.Vec3(0.38, -0.55, 0.20))
	cam.Transform.Rot = math32.Vec3(math32.DegToRad(82), 0, math32.DegToRad(35))

	sc.Add(body, capObj, key, fill, rim, cam)
	return nil
}
