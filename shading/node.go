// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shading builds material node graphs: small directed acyclic
// graphs of shading nodes (texture coordinate, mapping, procedural
// textures, bump, surface shader, output) that describe how a surface
// is shaded. Graphs are plain data; exporters read the surface
// parameters they can represent and ignore the rest.
package shading

import (
	"errors"
	"fmt"

	"github.com/blenderlab/forge/math32"
)

// ErrCapabilityMissing indicates that none of the known socket names
// for a canonical shader parameter exist in the target shader version.
// The parameter is skipped; the rest of the graph is unaffected.
var ErrCapabilityMissing = errors.New("no compatible shader socket")

// NodeKind enumerates the node types a material graph can contain.
type NodeKind int32

const (
	// Output is the single terminal node of a graph.
	Output NodeKind = iota

	// Principled is the physically-based surface shader.
	Principled

	// TexCoord emits texture coordinate vectors.
	TexCoord

	// Mapping transforms a coordinate vector.
	Mapping

	// NoiseTexture is a procedural fractal noise generator.
	NoiseTexture

	// WaveTexture is a procedural band/ring wave generator.
	WaveTexture

	// ColorRamp remaps a factor onto a color gradient.
	ColorRamp

	// Bump converts a height signal into a perturbed normal.
	Bump
)

func (k NodeKind) String() string {
	switch k {
	case Output:
		return "Output"
	case Principled:
		return "Principled"
	case TexCoord:
		return "TexCoord"
	case Mapping:
		return "Mapping"
	case NoiseTexture:
		return "NoiseTexture"
	case WaveTexture:
		return "WaveTexture"
	case ColorRamp:
		return "ColorRamp"
	case Bump:
		return "Bump"
	}
	return fmt.Sprintf("NodeKind(%d)", int32(k))
}

// nodeOutputs lists the output sockets of each node kind.
var nodeOutputs = map[NodeKind][]string{
	Output:       {},
	Principled:   {"BSDF"},
	TexCoord:     {"Object", "UV"},
	Mapping:      {"Vector"},
	NoiseTexture: {"Fac", "Color"},
	WaveTexture:  {"Color", "Fac"},
	ColorRamp:    {"Color"},
	Bump:         {"Normal"},
}

// nodeInputs lists the input sockets of each node kind. Principled is
// version-dependent and resolved separately; see principledInputs.
var nodeInputs = map[NodeKind][]string{
	Output:       {"Surface", "Displacement"},
	TexCoord:     {},
	Mapping:      {"Vector", "Location", "Rotation", "Scale"},
	NoiseTexture: {"Vector", "Scale", "Detail", "Distortion"},
	WaveTexture:  {"Vector", "Scale", "Distortion", "Detail"},
	ColorRamp:    {"Fac"},
	Bump:         {"Strength", "Distance", "Height"},
}

// Node is one shading node: a kind, a set of input sockets with
// optional default values, and free-form per-node settings (wave type,
// ramp colors) that have no socket representation.
type Node struct {
	Name string
	Kind NodeKind

	// Defaults holds per-socket default values (float32 or
	// math32.Vector4) for unconnected input sockets.
	Defaults map[string]any

	// Settings holds non-socket node options, such as the wave type of
	// a WaveTexture or the end colors of a ColorRamp.
	Settings map[string]any

	inputs []string
}

// HasInput reports whether the node has an input socket of the given name.
func (n *Node) HasInput(name string) bool {
	for _, in := range n.inputs {
		if in == name {
			return true
		}
	}
	return false
}

// HasOutput reports whether the node has an output socket of the given name.
func (n *Node) HasOutput(name string) bool {
	for _, out := range nodeOutputs[n.Kind] {
		if out == name {
			return true
		}
	}
	return false
}

// SetInput sets the default value of the named input socket.
// The value must be a float32 or a math32.Vector4.
func (n *Node) SetInput(name string, value any) error {
	if !n.HasInput(name) {
		return fmt.Errorf("%w: node %q (%v) has no input %q", ErrCapabilityMissing, n.Name, n.Kind, name)
	}
	switch value.(type) {
	case float32, math32.Vector4:
	default:
		return fmt.Errorf("node %q: unsupported socket value type %T", n.Name, value)
	}
	n.Defaults[name] = value
	return nil
}

// Input returns the default value of the named input socket, if set.
func (n *Node) Input(name string) (any, bool) {
	v, ok := n.Defaults[name]
	return v, ok
}

// InputFloat returns the named socket default as a float32.
func (n *Node) InputFloat(name string) (float32, bool) {
	v, ok := n.Defaults[name].(float32)
	return v, ok
}

// InputColor returns the named socket default as an RGBA color.
func (n *Node) InputColor(name string) (math32.Vector4, bool) {
	v, ok := n.Defaults[name].(math32.Vector4)
	return v, ok
}

// Link is a directed connection from an output socket of one node to an
// input socket of another.
type Link struct {
	FromNode   string
	FromSocket string
	ToNode     string
	ToSocket   string
}

// Graph is a material: a named DAG of shading nodes feeding exactly one
// Output node.
type Graph struct {
	Name  string
	Nodes []*Node
	Links []Link

	byName map[string]*Node
}

// NewGraph returns a new empty material graph with the given name.
func NewGraph(name string) *Graph {
	return &Graph{Name: name, byName: make(map[string]*Node)}
}

// AddNode creates a node of the given kind and name and adds it to the
// graph. Principled nodes must be added through [Builder] so that their
// version-dependent sockets are resolved; AddNode instantiates them
// with the current-version socket set.
func (g *Graph) AddNode(kind NodeKind, name string) *Node {
	n := &Node{
		Name:     name,
		Kind:     kind,
		Defaults: make(map[string]any),
		Settings: make(map[string]any),
	}
	if kind == Principled {
		n.inputs = principledInputs(VersionCurrent)
	} else {
		n.inputs = nodeInputs[kind]
	}
	g.Nodes = append(g.Nodes, n)
	g.byName[name] = n
	return n
}

// Node returns the node with the given name, or nil.
func (g *Graph) Node(name string) *Node {
	return g.byName[name]
}

// NodeOfKind returns the first node of the given kind, or nil.
func (g *Graph) NodeOfKind(kind NodeKind) *Node {
	for _, n := range g.Nodes {
		if n.Kind == kind {
			return n
		}
	}
	return nil
}

// Connect links an output socket of from to an input socket of to.
// Both sockets must exist on their nodes.
func (g *Graph) Connect(from *Node, fromSocket string, to *Node, toSocket string) error {
	if !from.HasOutput(fromSocket) {
		return fmt.Errorf("node %q (%v) has no output %q", from.Name, from.Kind, fromSocket)
	}
	if !to.HasInput(toSocket) {
		return fmt.Errorf("%w: node %q (%v) has no input %q", ErrCapabilityMissing, to.Name, to.Kind, toSocket)
	}
	g.Links = append(g.Links, Link{from.Name, fromSocket, to.Name, toSocket})
	return nil
}

// Validate checks the graph invariants: exactly one Output node, every
// link endpoint present, and no cycles.
func (g *Graph) Validate() error {
	outputs := 0
	for _, n := range g.Nodes {
		if n.Kind == Output {
			outputs++
		}
	}
	if outputs != 1 {
		return fmt.Errorf("material %q: %d output nodes, want exactly 1", g.Name, outputs)
	}

	adj := make(map[string][]string, len(g.Nodes))
	for _, l := range g.Links {
		if g.byName[l.FromNode] == nil || g.byName[l.ToNode] == nil {
			return fmt.Errorf("material %q: link %s.%s -> %s.%s references missing node",
				g.Name, l.FromNode, l.FromSocket, l.ToNode, l.ToSocket)
		}
		adj[l.FromNode] = append(adj[l.FromNode], l.ToNode)
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.Nodes))
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("material %q: cycle through node %q", g.Name, name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, next := range adj[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}
	for _, n := range g.Nodes {
		if err := visit(n.Name); err != nil {
			return err
		}
	}
	return nil
}

// Surface returns the Principled surface node of the graph, or nil.
// Exporters use it to read the base color and roughness they can
// represent in interchange formats.
func (g *Graph) Surface() *Node {
	return g.NodeOfKind(Principled)
}
