// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/blenderlab/forge/math32"
)

// LightKind enumerates the light shapes used by the generators.
type LightKind int32

const (
	// AreaLight is a rectangular soft light.
	AreaLight LightKind = iota

	// SpotLight is a cone-limited light.
	SpotLight

	// PointLight is an omnidirectional light.
	PointLight
)

func (k LightKind) String() string {
	switch k {
	case AreaLight:
		return "area"
	case SpotLight:
		return "spot"
	case PointLight:
		return "point"
	}
	return fmt.Sprintf("LightKind(%d)", int32(k))
}

// Light describes a light source. Lights are carried in the scene graph
// for completeness but are always excluded from the export selection.
type Light struct {

	// Kind is the light shape.
	Kind LightKind

	// Energy is the emission power in watts.
	Energy float32

	// Size is the emitter edge size for area lights.
	Size float32

	// SpotSize is the cone angle in radians for spot lights.
	SpotSize float32

	// SpotBlend is the cone edge softness in [0, 1] for spot lights.
	SpotBlend float32

	// Color is the emission color at full intensity; zero means white.
	Color math32.Vector4
}

// Camera describes a render viewpoint. Like lights, cameras never
// participate in export.
type Camera struct {

	// FocalLength is the lens focal length in millimeters.
	FocalLength float32
}
