// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import (
	"log/slog"

	"github.com/blenderlab/forge/math32"
)

// Builder constructs material graphs from fixed templates against a
// specific shader version. Version-dependent parameters go through the
// builder's capability table; a parameter with no compatible socket is
// skipped with a log line rather than failing the whole material.
type Builder struct {
	version Version
	caps    *CapabilityTable
	log     *slog.Logger
}

// NewBuilder returns a builder for the given shader version.
func NewBuilder(v Version) *Builder {
	return &Builder{version: v, caps: ResolveCapabilities(v), log: slog.Default()}
}

// WithLogger sets the logger used for skipped-parameter notices.
func (b *Builder) WithLogger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// addSurface adds a Principled node with the builder's version sockets.
func (b *Builder) addSurface(g *Graph, name string) *Node {
	n := g.AddNode(Principled, name)
	n.inputs = principledInputs(b.version)
	return n
}

// setParam attaches a canonical parameter to the surface node through
// the capability table, skipping it if no compatible socket exists.
func (b *Builder) setParam(g *Graph, n *Node, param string, value any) {
	sock, err := b.caps.Socket(param)
	if err != nil {
		b.log.Warn("skipping material parameter", "material", g.Name, "parameter", param, "version", b.version.String())
		return
	}
	if err := n.SetInput(sock, value); err != nil {
		b.log.Warn("skipping material parameter", "material", g.Name, "parameter", param, "err", err)
	}
}

// Plastic builds the translucent-plastic template:
// TexCoord -> Mapping -> WaveTexture -> Bump -> surface normal, with
// the surface BSDF feeding the output. The wave bump fakes embossed
// surface detail at shading time.
func (b *Builder) Plastic(name string, base math32.Vector4, roughness, transmission, ior float32) (*Graph, error) {
	g := NewGraph(name)

	out := g.AddNode(Output, "Output")
	bsdf := b.addSurface(g, "Surface")
	coord := g.AddNode(TexCoord, "TexCoord")
	mapping := g.AddNode(Mapping, "Mapping")
	wave := g.AddNode(WaveTexture, "Wave")
	bump := g.AddNode(Bump, "Bump")

	b.setParam(g, bsdf, "Base Color", base)
	b.setParam(g, bsdf, "Roughness", roughness)
	b.setParam(g, bsdf, "IOR", ior)
	b.setParam(g, bsdf, "Transmission", transmission)

	wave.Settings["WaveType"] = "Bands"
	wave.Settings["BandsDirection"] = "Diagonal"
	wave.SetInput("Scale", float32(14))
	wave.SetInput("Distortion", float32(1.5))
	wave.SetInput("Detail", float32(6))
	bump.SetInput("Strength", float32(0.6))
	bump.SetInput("Distance", float32(0.003))

	for _, link := range []struct {
		from *Node
		out  string
		to   *Node
		in   string
	}{
		{coord, "Object", mapping, "Vector"},
		{mapping, "Vector", wave, "Vector"},
		{wave, "Color", bump, "Height"},
		{bump, "Normal", bsdf, "Normal"},
		{bsdf, "BSDF", out, "Surface"},
	} {
		if err := g.Connect(link.from, link.out, link.to, link.in); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Bark builds the bark template: fractal noise drives both a dark-to-
// light color ramp into the base color and a bump into the normal.
func (b *Builder) Bark(name string, dark, light math32.Vector4) (*Graph, error) {
	g := NewGraph(name)

	out := g.AddNode(Output, "Output")
	bsdf := b.addSurface(g, "Surface")
	noise := g.AddNode(NoiseTexture, "Noise")
	ramp := g.AddNode(ColorRamp, "Ramp")
	bump := g.AddNode(Bump, "Bump")

	noise.SetInput("Scale", float32(8))
	noise.SetInput("Detail", float32(5))
	ramp.Settings["ColorStart"] = dark
	ramp.Settings["ColorEnd"] = light
	bump.SetInput("Strength", float32(0.5))

	b.setParam(g, bsdf, "Base Color", light)
	b.setParam(g, bsdf, "Roughness", float32(0.7))

	for _, link := range []struct {
		from *Node
		out  string
		to   *Node
		in   string
	}{
		{noise, "Fac", ramp, "Fac"},
		{ramp, "Color", bsdf, "Base Color"},
		{noise, "Fac", bump, "Height"},
		{bump, "Normal", bsdf, "Normal"},
		{bsdf, "BSDF", out, "Surface"},
	} {
		if err := g.Connect(link.from, link.out, link.to, link.in); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Solid builds the simplest template: a flat-colored surface shader
// feeding the output, used for walls, roofs and other plain surfaces.
func (b *Builder) Solid(name string, base math32.Vector4, roughness float32) (*Graph, error) {
	g := NewGraph(name)
	out := g.AddNode(Output, "Output")
	bsdf := b.addSurface(g, "Surface")
	b.setParam(g, bsdf, "Base Color", base)
	b.setParam(g, bsdf, "Roughness", roughness)
	if err := g.Connect(bsdf, "BSDF", out, "Surface"); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Glass builds a fully transmissive solid template for window panes.
func (b *Builder) Glass(name string, base math32.Vector4, roughness float32) (*Graph, error) {
	g, err := b.Solid(name, base, roughness)
	if err != nil {
		return nil, err
	}
	bsdf := g.Surface()
	b.setParam(g, bsdf, "Transmission", float32(1))
	b.setParam(g, bsdf, "IOR", float32(1.45))
	return g, nil
}

// Leaf builds the foliage template: a flat-colored surface with a
// subsurface weight for leaf translucency.
func (b *Builder) Leaf(name string, base math32.Vector4) (*Graph, error) {
	g := NewGraph(name)

	out := g.AddNode(Output, "Output")
	bsdf := b.addSurface(g, "Surface")

	b.setParam(g, bsdf, "Base Color", base)
	b.setParam(g, bsdf, "Roughness", float32(0.4))
	b.setParam(g, bsdf, "Subsurface", float32(0.3))

	if err := g.Connect(bsdf, "BSDF", out, "Surface"); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
