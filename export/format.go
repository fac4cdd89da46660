// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes the mesh subset of a scene to interchange
// formats through a priority-ordered fallback pipeline: the first
// format that produces a non-empty artifact wins, failures are
// recorded and the next candidate is tried, and only exhaustion of
// every candidate is a hard failure.
package export

import (
	"errors"

	"github.com/blenderlab/forge/scene"
)

// ErrFormatDisabled marks a format that must be skipped, never
// attempted.
var ErrFormatDisabled = errors.New("export format is disabled")

// Format is one export target. Write must either produce a complete
// file at path or return an error; the pipeline removes the file on
// failure.
type Format interface {

	// Name is the short format name ("glb", "stl").
	Name() string

	// Extension is the file extension including the dot.
	Extension() string

	// Enabled reports whether the format may be attempted. A disabled
	// format stays in the candidate list for visibility but is skipped.
	Enabled() bool

	// Write exports the given objects to the file at path.
	Write(path string, objects []*scene.Object) error
}

// DefaultFormats returns the standard candidate order: GLB binary
// first, then STL and PLY fallbacks, with OBJ present but disabled due
// to a known exporter regression.
func DefaultFormats() []Format {
	return []Format{GLB{}, STL{}, PLY{}, OBJ{}}
}

// FormatsByName resolves format names against [DefaultFormats],
// preserving the given order.
func FormatsByName(names []string) ([]Format, error) {
	byName := make(map[string]Format)
	for _, f := range DefaultFormats() {
		byName[f.Name()] = f
	}
	var out []Format
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, errors.New("unknown export format " + name)
		}
		out = append(out, f)
	}
	return out, nil
}
