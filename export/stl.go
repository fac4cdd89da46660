// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
)

// STL writes binary STL, the first fallback format. STL carries bare
// triangles, so all objects are triangulated and concatenated and
// materials are dropped.
type STL struct{}

func (STL) Name() string      { return "stl" }
func (STL) Extension() string { return ".stl" }
func (STL) Enabled() bool     { return true }

func (STL) Write(path string, objects []*scene.Object) error {
	meshes := make([]*mesh.Mesh, 0, len(objects))
	total := uint32(0)
	for _, ob := range objects {
		m, err := ob.WorldMesh()
		if err != nil {
			return fmt.Errorf("stl: %w", err)
		}
		meshes = append(meshes, m)
		total += uint32(len(m.Triangulate()))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	var header [80]byte
	copy(header[:], "forge binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, total); err != nil {
		return fmt.Errorf("stl: %w", err)
	}

	for _, m := range meshes {
		for _, t := range m.Triangulate() {
			face := mesh.Face{t[0], t[1], t[2]}
			n := m.FaceNormal(face)
			rec := [12]float32{
				n.X, n.Y, n.Z,
				m.Vertices[t[0]].X, m.Vertices[t[0]].Y, m.Vertices[t[0]].Z,
				m.Vertices[t[1]].X, m.Vertices[t[1]].Y, m.Vertices[t[1]].Z,
				m.Vertices[t[2]].X, m.Vertices[t[2]].Y, m.Vertices[t[2]].Z,
			}
			if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
				return fmt.Errorf("stl: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
				return fmt.Errorf("stl: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	return f.Close()
}
