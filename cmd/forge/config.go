// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML duration
// strings such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Config is the optional YAML configuration file. Flags override
// whatever the file sets.
type Config struct {

	// Out is the output path base; format extensions are appended.
	Out string `yaml:"out"`

	// Formats is the export candidate order, by name (glb, stl, ply,
	// obj). Empty means the default order.
	Formats []string `yaml:"formats"`

	// Timeout bounds each export attempt; zero means unbounded.
	Timeout Duration `yaml:"timeout"`

	// Scale is the uniform asset scale for the tree pack.
	Scale float32 `yaml:"scale"`

	// ShaderVersion selects the material socket naming generation
	// (3 or 4). Zero means the current generation.
	ShaderVersion int `yaml:"shader_version"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{Out: "forge_export", Scale: 1}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
