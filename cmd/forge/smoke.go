// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blenderlab/forge/export"
	"github.com/blenderlab/forge/math32"
	"github.com/blenderlab/forge/mesh"
	"github.com/blenderlab/forge/scene"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "verify the export path end to end",
	Long: `smoke generates a unit cube, runs it through the export pipeline
into a temporary directory and verifies a non-empty artifact appears.
It exits non-zero on any failure, so wrappers can gate on it.`,
	Args: cobra.NoArgs,
	RunE: runSmoke,
}

func init() {
	rootCmd.AddCommand(smokeCmd)
}

func runSmoke(cmd *cobra.Command, args []string) error {
	dir, err := os.MkdirTemp("", "forge-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	sc := scene.NewScene()
	sc.Add(scene.NewMeshObject("SmokeCube", mesh.Box("SmokeCube", math32.Vec3(1, 1, 1))))

	art, err := export.NewPipeline().Run(cmd.Context(), sc, filepath.Join(dir, "smoke"))
	if err != nil {
		return fmt.Errorf("smoke: %w", err)
	}
	if art.Size == 0 {
		return fmt.Errorf("smoke: empty artifact %s", art.Path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "smoke ok: %s (%d bytes) via %s\n", art.Path, art.Size, art.Format)
	return nil
}
