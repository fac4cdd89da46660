// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/shading"
)

// Kind is the object type tag: mesh objects are export-eligible,
// lights and cameras are not.
type Kind int32

const (
	KindMesh Kind = iota
	KindLight
	KindCamera
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Modifier is a deferred geometry edit recorded on an object and
// applied in order when the object's mesh is evaluated. The modifiers
// in package mesh (Emboss, Displace, Solidify, Bevel) implement it.
type Modifier interface {
	Name() string
	Apply(m *mesh.Mesh) error
}

// Object is one scene graph entry: a mesh, light or camera with a
// transform, an ordered list of attached materials, and an ordered
// modifier stack. Objects are created once by a generator and replaced
// only by an explicit scene reset.
type Object struct {

	// ID is a unique object handle.
	ID string

	// Name is the display/export name.
	Name string

	// Kind tags the object as mesh, light or camera.
	Kind Kind

	// Mesh is the base geometry, set only for KindMesh.
	Mesh *mesh.Mesh

	// Light is set only for KindLight.
	Light *Light

	// Camera is set only for KindCamera.
	Camera *Camera

	// Transform places the object in world space.
	Transform Transform

	// Materials are the attached material graphs, in slot order.
	Materials []*shading.Graph

	// Modifiers are applied in order during mesh evaluation.
	Modifiers []Modifier
}

// NewMeshObject returns a mesh object with an identity transform.
func NewMeshObject(name string, m *mesh.Mesh) *Object {
	return &Object{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      KindMesh,
		Mesh:      m,
		Transform: IdentityTransform(),
	}
}

// NewLightObject returns a light object with an identity transform.
func NewLightObject(name string, l *Light) *Object {
	return &Object{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      KindLight,
		Light:     l,
		Transform: IdentityTransform(),
	}
}

// NewCameraObject returns a camera object with an identity transform.
func NewCameraObject(name string, c *Camera) *Object {
	return &Object{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      KindCamera,
		Camera:    c,
		Transform: IdentityTransform(),
	}
}

// AttachMaterial appends a material graph to the object's slot list.
func (ob *Object) AttachMaterial(g *shading.Graph) *Object {
	ob.Materials = append(ob.Materials, g)
	return ob
}

// AddModifier appends a modifier to the object's stack.
func (ob *Object) AddModifier(mod Modifier) *Object {
	ob.Modifiers = append(ob.Modifiers, mod)
	return ob
}

// EvaluatedMesh returns a copy of the object's mesh with the modifier
// stack applied in order. An empty region selection is a cosmetic
// failure: the modifier is skipped with a log line and evaluation
// continues. Any other modifier error is fatal to the evaluation.
// The object's base mesh is never mutated.
func (ob *Object) EvaluatedMesh() (*mesh.Mesh, error) {
	if ob.Kind != KindMesh || ob.Mesh == nil {
		return nil, fmt.Errorf("object %q (%v) has no mesh", ob.Name, ob.Kind)
	}
	m := ob.Mesh.Clone()
	for _, mod := range ob.Modifiers {
		if err := mod.Apply(m); err != nil {
			if errors.Is(err, mesh.ErrSelectionEmpty) {
				slog.Warn("skipping modifier", "object", ob.Name, "modifier", mod.Name(), "reason", err)
				continue
			}
			return nil, fmt.Errorf("object %q: modifier %s: %w", ob.Name, mod.Name(), err)
		}
	}
	return m, nil
}

// WorldMesh returns the evaluated mesh with the object's transform
// baked into the vertex positions, ready for export.
func (ob *Object) WorldMesh() (*mesh.Mesh, error) {
	m, err := ob.EvaluatedMesh()
	if err != nil {
		return nil, err
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = ob.Transform.ApplyTo(v)
	}
	return m, nil
}
