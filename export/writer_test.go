// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
)

func TestSTLWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.stl")
	require.NoError(t, STL{}.Write(path, scene.ExportSelection(testScene(t))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// 80-byte header, 4-byte count, 50 bytes per triangle; a box is 6
	// quads, so 12 triangles
	assert.Len(t, data, 80+4+12*50)
}

func TestPLYWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.ply")
	require.NoError(t, PLY{}.Write(path, scene.ExportSelection(testScene(t))))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var header []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		header = append(header, s.Text())
		if s.Text() == "end_header" {
			break
		}
	}
	require.NoError(t, s.Err())

	assert.Equal(t, "ply", header[0])
	assert.Contains(t, header, "element vertex 8")
	assert.Contains(t, header, "element face 6")

	// quads survive PLY export
	require.True(t, s.Scan())
	firstVert := s.Text()
	assert.Len(t, strings.Fields(firstVert), 3)
}

func TestGLBWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.glb")
	require.NoError(t, GLB{}.Write(path, scene.ExportSelection(testScene(t))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "glTF", string(data[:4]))
}

func TestGLBWriteWithTransform(t *testing.T) {
	sc := scene.NewScene()
	ob := scene.NewMeshObject("box", mesh.Box("box", math32.Vec3(1, 1, 1)))
	ob.Transform = scene.At(math32.Vec3(5, 0, 0))
	sc.Add(ob)

	path := filepath.Join(t.TempDir(), "moved.glb")
	require.NoError(t, GLB{}.Write(path, scene.ExportSelection(sc)))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}
