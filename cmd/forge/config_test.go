// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
out: /tmp/assets/bottle
formats: [stl, glb]
timeout: 30s
scale: 2.5
shader_version: 3
verbose: true
`), 0o666))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/assets/bottle", cfg.Out)
	assert.Equal(t, []string{"stl", "glb"}, cfg.Formats)
	assert.Equal(t, Duration(30*time.Second), cfg.Timeout)
	assert.Equal(t, float32(2.5), cfg.Scale)
	assert.Equal(t, 3, cfg.ShaderVersion)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o666))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Out, cfg.Out)
	assert.Equal(t, float32(1), cfg.Scale)
}
