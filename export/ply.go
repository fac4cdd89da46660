// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
)

// PLY writes ASCII PLY, the second fallback format. PLY supports
// polygon faces directly, so quads survive the round trip; all objects
// are merged into one element list.
type PLY struct{}

func (PLY) Name() string      { return "ply" }
func (PLY) Extension() string { return ".ply" }
func (PLY) Enabled() bool     { return true }

func (PLY) Write(path string, objects []*scene.Object) error {
	meshes := make([]*mesh.Mesh, 0, len(objects))
	nVerts, nFaces := 0, 0
	for _, ob := range objects {
		m, err := ob.WorldMesh()
		if err != nil {
			return fmt.Errorf("ply: %w", err)
		}
		meshes = append(meshes, m)
		nVerts += len(m.Vertices)
		nFaces += len(m.Faces)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ply: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "ply")
	fmt.Fprintln(w, "format ascii 1.0")
	fmt.Fprintln(w, "comment forge export")
	fmt.Fprintf(w, "element vertex %d\n", nVerts)
	fmt.Fprintln(w, "property float x")
	fmt.Fprintln(w, "property float y")
	fmt.Fprintln(w, "property float z")
	fmt.Fprintf(w, "element face %d\n", nFaces)
	fmt.Fprintln(w, "property list uchar int vertex_indices")
	fmt.Fprintln(w, "end_header")

	for _, m := range meshes {
		for _, v := range m.Vertices {
			fmt.Fprintf(w, "%g %g %g\n", v.X, v.Y, v.Z)
		}
	}
	base := 0
	for _, m := range meshes {
		for _, face := range m.Faces {
			fmt.Fprintf(w, "%d", len(face))
			for _, vi := range face {
				fmt.Fprintf(w, " %d", base+vi)
			}
			fmt.Fprintln(w)
		}
		base += len(m.Vertices)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("ply: %w", err)
	}
	return f.Close()
}
