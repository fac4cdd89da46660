// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/scene"
	"github.com/blenderlab/forge/shading"
)

// PackPositions are the default asset pack slots: one tree per
// archetype on a 4m grid along X.
var PackPositions = []math32.Vector3{
	{X: 0}, {X: 4}, {X: 8}, {X: 12}, {X: 16},
}

// Pack generates one tree per position, cycling through the archetypes
// in order. Each variant draws all of its randomness from its own
// location seed, so variants are independent and generated
// concurrently; the scene's lock serializes the appends, and the
// per-variant object groups stay contiguous. The first failure cancels
// the remaining variants.
func Pack(ctx context.Context, b *shading.Builder, sc *scene.Scene, positions []math32.Vector3, scale float32) error {
	if len(positions) == 0 {
		positions = PackPositions
	}
	if scale == 0 {
		scale = 1
	}
	p, err := NewPalette(b)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, pos := range positions {
		pos := pos
		kind := TreeKinds[i%len(TreeKinds)]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			objs, err := Tree(p, kind, pos, scale)
			if err != nil {
				return err
			}
			sc.Add(objs...)
			return nil
		})
	}
	return g.Wait()
}
