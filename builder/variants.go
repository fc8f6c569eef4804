// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// variants.go - NetworkName enum and its textual forms.

package builder

import (
	"fmt"
	"strings"
)

// NetworkName enumerates the baked spin networks.
type NetworkName int

// Enum values (stable ordering).
const (
	NetworkTetrahedral NetworkName = iota // V=4, E=6, valence 3
	NetworkCubical                        // V=8, E=12, valence 3
	NetworkOctahedral                     // V=6, E=12, valence 4
)

// String provides a readable identifier for logs/errors (deterministic).
func (n NetworkName) String() string {
	switch n {
	case NetworkTetrahedral:
		return "tetrahedral"
	case NetworkCubical:
		return "cubical"
	case NetworkOctahedral:
		return "octahedral"
	default:
		return "unknown"
	}
}

// NetworkNames lists every baked network in enum order.
func NetworkNames() []NetworkName {
	return []NetworkName{NetworkTetrahedral, NetworkCubical, NetworkOctahedral}
}

// ParseNetworkName maps a case-insensitive name ("tetrahedral", "tetra",
// "cube", ...) to a NetworkName.
func ParseNetworkName(s string) (NetworkName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tetrahedral", "tetrahedron", "tetra":
		return NetworkTetrahedral, nil
	case "cubical", "cube":
		return NetworkCubical, nil
	case "octahedral", "octahedron", "octa":
		return NetworkOctahedral, nil
	default:
		return 0, fmt.Errorf("ParseNetworkName(%q): %w", s, ErrUnknownNetwork)
	}
}
