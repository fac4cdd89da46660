// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/scene"
	"github.com/blenderlab/forge/shading"
)

// GLB writes the binary glTF interchange format, the primary export
// target. Each mesh object becomes one glTF node with baked world-space
// vertices; the first attached material's base color and roughness map
// onto a PBR metallic-roughness material.
type GLB struct{}

func (GLB) Name() string      { return "glb" }
func (GLB) Extension() string { return ".glb" }
func (GLB) Enabled() bool     { return true }

func (GLB) Write(path string, objects []*scene.Object) error {
	doc := gltf.NewDocument()
	for _, ob := range objects {
		m, err := ob.WorldMesh()
		if err != nil {
			return fmt.Errorf("glb: %w", err)
		}
		positions := make([][3]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = [3]float32{v.X, v.Y, v.Z}
		}
		normals := make([][3]float32, len(m.Vertices))
		for i, n := range m.VertexNormals() {
			normals[i] = [3]float32{n.X, n.Y, n.Z}
		}
		tris := m.Triangulate()
		indices := make([]uint32, 0, len(tris)*3)
		for _, t := range tris {
			indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
		}

		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
		}
		if len(ob.Materials) > 0 {
			prim.Material = gltf.Index(addMaterial(doc, ob.Materials[0]))
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: ob.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return gltf.SaveBinary(doc, path)
}

// addMaterial converts the exportable subset of a material graph (base
// color, roughness, alpha) into a glTF PBR material and returns its index.
func addMaterial(doc *gltf.Document, g *shading.Graph) int {
	base := math32.Vec4(0.8, 0.8, 0.8, 1)
	rough := float32(0.5)
	if s := g.Surface(); s != nil {
		if c, ok := s.InputColor("Base Color"); ok {
			base = c
		}
		if r, ok := s.InputFloat("Roughness"); ok {
			rough = r
		}
	}
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: g.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(base.X), float64(base.Y), float64(base.Z), float64(base.W)},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(float64(rough)),
		},
	})
	return len(doc.Materials) - 1
}
