// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import "github.com/blenderlab/forge/scene"

// OBJ is the Wavefront OBJ format. It is kept in the candidate list for
// visibility but disabled: the host's OBJ exporter has a known
// regression that produces files importers reject, so the pipeline
// must skip it rather than attempt it.
type OBJ struct{}

func (OBJ) Name() string      { return "obj" }
func (OBJ) Extension() string { return ".obj" }
func (OBJ) Enabled() bool     { return false }

func (OBJ) Write(path string, objects []*scene.Object) error {
	return ErrFormatDisabled
}
