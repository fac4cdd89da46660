// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the scene graph produced by one generation run:
// an ordered collection of mesh, light and camera objects, each with a
// transform, attached materials and an ordered modifier stack.
//
// There is no ambient "active object": every operation takes and
// returns explicit values, and one [Scene] is owned by the top-level
// invocation and passed to every component that needs it.
package scene

import (
	"sync"
)

// Scene is the full object collection for one generation run. Objects
// are appended in creation order and never implicitly removed; Reset is
// the only way to drop them.
type Scene struct {
	mu      sync.Mutex
	objects []*Object
}

// NewScene returns a new empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends the given objects in order. It is safe for concurrent
// use, so independent generators can submit their objects as they
// finish.
func (sc *Scene) Add(objs ...*Object) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.objects = append(sc.objects, objs...)
}

// Len returns the number of objects in the scene.
func (sc *Scene) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.objects)
}

// Objects returns a snapshot copy of the object list in creation order.
func (sc *Scene) Objects() []*Object {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	out := make([]*Object, len(sc.objects))
	copy(out, sc.objects)
	return out
}

// Reset removes every object from the scene.
func (sc *Scene) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.objects = nil
}
