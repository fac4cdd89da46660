// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/mesh"
)

func TestSceneAddAndReset(t *testing.T) {
	sc := NewScene()
	a := NewMeshObject("a", mesh.Box("a", math32.Vec3(1, 1, 1)))
	b := NewLightObject("b", &Light{Kind: AreaLight, Energy: 100})
	sc.Add(a, b)

	assert.Equal(t, 2, sc.Len())
	objs := sc.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, "a", objs[0].Name)
	assert.Equal(t, "b", objs[1].Name)
	assert.NotEqual(t, objs[0].ID, objs[1].ID)

	sc.Reset()
	assert.Equal(t, 0, sc.Len())
}

func TestSceneConcurrentAdd(t *testing.T) {
	sc := NewScene()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sc.Add(NewMeshObject("m", mesh.Box("m", math32.Vec3(1, 1, 1))))
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, sc.Len())
}

func TestExportSelection(t *testing.T) {
	sc := NewScene()
	sc.Add(
		NewMeshObject("m1", mesh.Box("m1", math32.Vec3(1, 1, 1))),
		NewLightObject("l1", &Light{Kind: SpotLight}),
		NewMeshObject("m2", mesh.Plane("m2", 1)),
		NewCameraObject("c1", &Camera{FocalLength: 85}),
	)

	sel := ExportSelection(sc)
	require.Len(t, sel, 2)
	assert.Equal(t, "m1", sel[0].Name)
	assert.Equal(t, "m2", sel[1].Name)
	for _, ob := range sel {
		assert.Equal(t, KindMesh, ob.Kind)
	}
}

func TestEvaluatedMeshAppliesModifiers(t *testing.T) {
	base := mesh.Box("box", math32.Vec3(1, 1, 1))
	ob := NewMeshObject("box", base).
		AddModifier(&mesh.Solidify{Thickness: 0.1})

	m, err := ob.EvaluatedMesh()
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 16)

	// the base mesh is never mutated
	assert.Len(t, base.Vertices, 8)
}

func TestEvaluatedMeshSkipsEmptySelection(t *testing.T) {
	base := mesh.Box("box", math32.Vec3(1, 1, 1))
	ob := NewMeshObject("box", base).
		AddModifier(&mesh.Emboss{Band: mesh.HeightRange{Min: 50, Max: 60}, Cuts: 2}).
		AddModifier(&mesh.Solidify{Thickness: 0.1})

	// the empty emboss is skipped, later modifiers still run
	m, err := ob.EvaluatedMesh()
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 16)
}

func TestEvaluatedMeshNoMesh(t *testing.T) {
	ob := NewLightObject("l", &Light{})
	_, err := ob.EvaluatedMesh()
	assert.Error(t, err)
}

func TestWorldMeshBakesTransform(t *testing.T) {
	ob := NewMeshObject("p", mesh.Plane("p", 2))
	ob.Transform = At(math32.Vec3(10, 0, 5))
	ob.Transform.Scale = math32.Vec3(2, 2, 2)

	m, err := ob.WorldMesh()
	require.NoError(t, err)

	bb := m.Bounds()
	assert.Equal(t, math32.Vec3(10, 0, 5), bb.Center())
	assert.InDelta(t, 4, bb.Size().X, 1e-5)
}

func TestTransformOrder(t *testing.T) {
	// scale, then rotation, then translation
	tr := Transform{
		Pos:   math32.Vec3(1, 0, 0),
		Rot:   math32.Vec3(0, 0, math32.DegToRad(90)),
		Scale: math32.Vec3(2, 1, 1),
	}
	got := tr.ApplyTo(math32.Vec3(1, 0, 0))
	want := math32.Vec3(1, 2, 0)
	assert.Empty(t, cmp.Diff(want, got, approxVec3()))
}

func approxVec3() cmp.Option {
	return cmp.Comparer(func(a, b math32.Vector3) bool {
		const eps = 1e-5
		return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
	})
}
