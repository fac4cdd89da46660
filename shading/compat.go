// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import "fmt"

// Version identifies the surface shader socket naming convention in
// effect. Hosts renamed several Principled sockets between major
// releases, so parameter attachment goes through a [CapabilityTable]
// resolved once per version instead of per-call name probing.
type Version int32

const (
	// Version3 is the older socket naming ("Transmission", "Subsurface").
	Version3 Version = iota

	// Version4 is the newer socket naming ("Transmission Weight",
	// "Subsurface Weight").
	Version4
)

// VersionCurrent is the naming convention assumed when a graph is built
// without an explicit version.
const VersionCurrent = Version4

func (v Version) String() string {
	switch v {
	case Version3:
		return "v3"
	case Version4:
		return "v4"
	}
	return fmt.Sprintf("Version(%d)", int32(v))
}

// principledBase are the Principled sockets named identically across
// all supported versions.
var principledBase = []string{
	"Base Color",
	"Roughness",
	"IOR",
	"Alpha",
	"Normal",
}

// principledInputs returns the full Principled input socket set for the
// given version.
func principledInputs(v Version) []string {
	switch v {
	case Version3:
		return append([]string{"Transmission", "Subsurface"}, principledBase...)
	default:
		return append([]string{"Transmission Weight", "Subsurface Weight"}, principledBase...)
	}
}

// paramAliases maps each canonical surface parameter to the socket
// names it has carried, newest first.
var paramAliases = map[string][]string{
	"Base Color":   {"Base Color"},
	"Roughness":    {"Roughness"},
	"IOR":          {"IOR"},
	"Alpha":        {"Alpha"},
	"Transmission": {"Transmission Weight", "Transmission"},
	"Subsurface":   {"Subsurface Weight", "Subsurface"},
}

// CapabilityTable maps canonical surface parameters to the socket name
// the target version actually exposes. It is resolved once when a
// [Builder] is constructed.
type CapabilityTable struct {
	version Version
	sockets map[string]string
}

// ResolveCapabilities builds the capability table for the given shader
// version by probing each parameter's known socket names against the
// version's socket set and keeping the first that exists.
func ResolveCapabilities(v Version) *CapabilityTable {
	avail := make(map[string]bool)
	for _, s := range principledInputs(v) {
		avail[s] = true
	}
	ct := &CapabilityTable{version: v, sockets: make(map[string]string, len(paramAliases))}
	for param, names := range paramAliases {
		for _, name := range names {
			if avail[name] {
				ct.sockets[param] = name
				break
			}
		}
	}
	return ct
}

// Socket returns the resolved socket name for a canonical parameter.
// Returns [ErrCapabilityMissing] when the version exposes none of the
// parameter's known names.
func (ct *CapabilityTable) Socket(param string) (string, error) {
	s, ok := ct.sockets[param]
	if !ok {
		return "", fmt.Errorf("%w: parameter %q in shader %v", ErrCapabilityMissing, param, ct.version)
	}
	return s, nil
}
