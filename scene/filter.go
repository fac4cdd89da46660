// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// ExportSelection returns the export-eligible subset of the scene: the
// mesh objects, in creation order. Lights and cameras are always
// excluded. The function is pure with respect to the scene snapshot;
// calling it twice on an unchanged scene yields the same set.
func ExportSelection(sc *Scene) []*Object {
	var sel []*Object
	for _, ob := range sc.Objects() {
		if ob.Kind == KindMesh {
			sel = append(sel, ob)
		}
	}
	return sel
}
