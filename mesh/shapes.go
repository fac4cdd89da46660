// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/blenderlab/forge/math32"
)

// Sphere returns a UV sphere of the given radius, built by revolving a
// semicircular profile with segs elevation bands through segs angular
// steps. The result is a closed manifold centered at the origin.
func Sphere(name string, radius float32, segs int) (*Mesh, error) {
	p := make(Profile, segs+1)
	for k := 0; k <= segs; k++ {
		elev := float32(k) / float32(segs) * math32.Pi
		r := radius * math32.Sin(elev)
		if k == 0 || k == segs {
			r = 0
		}
		p[k] = ProfilePoint{Radius: r, Height: -radius * math32.Cos(elev)}
	}
	return Revolve(name, p, segs)
}

// Cone returns a capped truncated cone (a cylinder when botRad equals
// topRad, a true cone when topRad is 0), with its base at height 0 and
// height along +Z.
func Cone(name string, height, botRad, topRad float32, steps int) (*Mesh, error) {
	p := Profile{{Radius: 0, Height: 0}}
	if botRad > 0 {
		p = append(p, ProfilePoint{Radius: botRad, Height: 0})
	}
	if topRad > 0 {
		p = append(p, ProfilePoint{Radius: topRad, Height: height})
	}
	p = append(p, ProfilePoint{Radius: 0, Height: height})
	return Revolve(name, p, steps)
}

// Box returns an axis-aligned cuboid of the given size centered at the
// origin, built from 8 vertices and 6 outward-wound quads.
func Box(name string, size math32.Vector3) *Mesh {
	h := size.MulScalar(0.5)
	m := New(name)
	for _, z := range []float32{-h.Z, h.Z} {
		m.AddVertex(math32.Vec3(-h.X, -h.Y, z))
		m.AddVertex(math32.Vec3(h.X, -h.Y, z))
		m.AddVertex(math32.Vec3(h.X, h.Y, z))
		m.AddVertex(math32.Vec3(-h.X, h.Y, z))
	}
	m.AddFace(0, 3, 2, 1) // bottom (-z)
	m.AddFace(4, 5, 6, 7) // top (+z)
	m.AddFace(0, 1, 5, 4) // front (-y)
	m.AddFace(1, 2, 6, 5) // right (+x)
	m.AddFace(2, 3, 7, 6) // back (+y)
	m.AddFace(3, 0, 4, 7) // left (-x)
	return m
}

// Plane returns a single square quad of the given edge size on the
// z=0 plane, facing +Z.
func Plane(name string, size float32) *Mesh {
	h := size / 2
	m := New(name)
	m.AddVertex(math32.Vec3(-h, -h, 0))
	m.AddVertex(math32.Vec3(h, -h, 0))
	m.AddVertex(math32.Vec3(h, h, 0))
	m.AddVertex(math32.Vec3(-h, h, 0))
	m.AddFace(0, 1, 2, 3)
	return m
}
