// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets contains the procedural scene builders: the embossed
// bottle, the seeded tree variant family, and the fixed-geometry house.
// Builders only create objects and append them to an explicitly passed
// scene; they never touch ambient state.
package assets

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
	"github.com/blenderlab/forge/shading"
)

// TreeKind selects one of the five tree archetypes.
type TreeKind int32

const (
	Conifer TreeKind = iota
	Deciduous
	Birch
	Oak
	Palm
)

func (k TreeKind) String() string {
	switch k {
	case Conifer:
		return "conifer"
	case Deciduous:
		return "deciduous"
	case Birch:
		return "birch"
	case Oak:
		return "oak"
	case Palm:
		return "palm"
	}
	return fmt.Sprintf("TreeKind(%d)", int32(k))
}

// TreeKinds lists the archetypes in pack order.
var TreeKinds = []TreeKind{Conifer, Deciduous, Birch, Oak, Palm}

// Archetype is the fixed parameter set of one tree silhouette.
// For a given archetype the part counts (1 trunk + Levels*4 foliage
// clumps) and relative proportions never vary; only seed-derived
// micro-variation differs between instances.
type Archetype struct {
	TrunkHeight   float32
	TrunkRadius   float32
	Taper         float32
	FoliageHeight float32
	FoliageRadius float32
	Levels        int
	DarkBark      bool
	DarkLeaf      bool
}

// Archetypes is the tree silhouette lookup table.
var Archetypes = map[TreeKind]Archetype{
	Conifer:   {TrunkHeight: 4.5, TrunkRadius: 0.3, Taper: 0.6, FoliageHeight: 5.0, FoliageRadius: 1.2, Levels: 4, DarkBark: true, DarkLeaf: true},
	Deciduous: {TrunkHeight: 3.5, TrunkRadius: 0.4, Taper: 0.6, FoliageHeight: 3.0, FoliageRadius: 2.0, Levels: 3},
	Birch:     {TrunkHeight: 5.0, TrunkRadius: 0.15, Taper: 0.6, FoliageHeight: 4.5, FoliageRadius: 1.0, Levels: 5},
	Oak:       {TrunkHeight: 3.0, TrunkRadius: 0.5, Taper: 0.6, FoliageHeight: 2.5, FoliageRadius: 2.5, Levels: 2, DarkLeaf: true},
	Palm:      {TrunkHeight: 4.0, TrunkRadius: 0.35, Taper: 0.6, FoliageHeight: 2.0, FoliageRadius: 1.8, Levels: 3, DarkBark: true},
}

const (
	trunkSegs   = 8
	foliageSegs = 12
)

// Palette is the shared tree material library, built once per pack.
type Palette struct {
	BarkDark  *shading.Graph
	BarkLight *shading.Graph
	LeafGreen *shading.Graph
	LeafDark  *shading.Graph
}

// NewPalette builds the four tree materials with the given builder.
func NewPalette(b *shading.Builder) (*Palette, error) {
	p := &Palette{}
	var err error
	if p.BarkDark, err = b.Bark("BarkDark", math32.Vec4(0.2, 0.15, 0.1, 1), math32.Vec4(0.35, 0.28, 0.2, 1)); err != nil {
		return nil, err
	}
	if p.BarkLight, err = b.Bark("BarkLight", math32.Vec4(0.35, 0.3, 0.2, 1), math32.Vec4(0.5, 0.45, 0.35, 1)); err != nil {
		return nil, err
	}
	if p.LeafGreen, err = b.Leaf("LeafGreen", math32.Vec4(0.1, 0.4, 0.1, 1)); err != nil {
		return nil, err
	}
	if p.LeafDark, err = b.Leaf("LeafDark", math32.Vec4(0.05, 0.25, 0.05, 1)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Palette) bark(dark bool) *shading.Graph {
	if dark {
		return p.BarkDark
	}
	return p.BarkLight
}

func (p *Palette) leaf(dark bool) *shading.Graph {
	if dark {
		return p.LeafDark
	}
	return p.LeafGreen
}

// locationSeed derives a stable pseudo-random seed from the bit
// patterns of a location, so that identical locations always produce
// identical variation.
func locationSeed(loc math32.Vector3) int64 {
	h := fnv.New64a()
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(loc.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(loc.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(loc.Z))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// Tree generates one composite tree variant: a tapered trunk plus a
// canopy of Levels bands, each with one main clump on the trunk axis
// and three side clumps at 120 degree spacing and 0.7x radius offset.
// Clump radii shrink geometrically with the band index.
//
// Tree is a pure function of its inputs: all randomness derives from a
// stable hash of loc, so repeated calls with identical (kind, loc,
// scale) produce identical geometry.
func Tree(p *Palette, kind TreeKind, loc math32.Vector3, scale float32) ([]*scene.Object, error) {
	arch, ok := Archetypes[kind]
	if !ok {
		return nil, fmt.Errorf("unknown tree kind %v", kind)
	}
	rng := rand.New(rand.NewSource(locationSeed(loc)))

	trunkH := arch.TrunkHeight * scale
	trunkR := arch.TrunkRadius * scale
	folH := arch.FoliageHeight * scale
	folR := arch.FoliageRadius * scale

	trunkMesh, err := mesh.Cone(fmt.Sprintf("Trunk_%s", kind), trunkH, trunkR, trunkR*arch.Taper, trunkSegs)
	if err != nil {
		return nil, err
	}
	trunk := scene.NewMeshObject(trunkMesh.Name, trunkMesh)
	trunk.Transform = scene.At(loc)
	// slight twist about the vertical axis for a curved-trunk look
	trunk.Transform.Rot.Z = 0.1 + 0.05*(rng.Float32()-0.5)
	trunk.AttachMaterial(p.bark(arch.DarkBark))

	objs := []*scene.Object{trunk}
	leafMat := p.leaf(arch.DarkLeaf)
	canopyStart := loc.Z + trunkH*0.5

	for level := 0; level < arch.Levels; level++ {
		z := canopyStart + float32(level)*folH/float32(arch.Levels)
		mainR := folR * (1 - float32(level)*0.1)
		main, err := foliageClump(fmt.Sprintf("Foliage_L%d_Main", level),
			math32.Vec3(loc.X, loc.Y, z), mainR, leafMat, rng.Int63())
		if err != nil {
			return nil, err
		}
		objs = append(objs, main)

		sideR := folR * 0.6 * (1 - float32(level)*0.15)
		for i := 0; i < 3; i++ {
			ang := math32.DegToRad(float32(i) * 120)
			pos := math32.Vec3(
				loc.X+math32.Cos(ang)*folR*0.7,
				loc.Y+math32.Sin(ang)*folR*0.7,
				z,
			)
			side, err := foliageClump(fmt.Sprintf("Foliage_L%d_S%d", level, i),
				pos, sideR, leafMat, rng.Int63())
			if err != nil {
				return nil, err
			}
			objs = append(objs, side)
		}
	}
	return objs, nil
}

// foliageClump creates one roughly-spherical foliage mass with a seeded
// displacement proportional to its radius, so clumps never read as
// perfect spheres.
func foliageClump(name string, pos math32.Vector3, radius float32, mat *shading.Graph, seed int64) (*scene.Object, error) {
	m, err := mesh.Sphere(name, radius, foliageSegs)
	if err != nil {
		return nil, err
	}
	ob := scene.NewMeshObject(name, m)
	ob.Transform = scene.At(pos)
	ob.AddModifier(&mesh.Displace{Strength: radius * 0.15, Scale: 2 / radius, Seed: seed})
	ob.AttachMaterial(mat)
	return ob, nil
}
