// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(faces, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, seals, then stores the initial amplitude and action.
//   - Public factories (Tetrahedral, Cubical, Octahedral, Network) are declared here.
//   - Determinism: same options and constructor order ⇒ bit-identical graphs.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/operators"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph declaring faces (overridable with WithFaces),
// resolves the builder configuration from bopts, applies all constructors in
// order and seals the result. The cache is initialised with
// SpinNetworkAmplitude and ReggeAction.
//
// Errors:
//   - Wraps constructor and Seal errors via %w with ErrConstructFailed.
func BuildGraph(faces int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.faces >= 0 {
		faces = cfg.faces
	}
	g := core.NewGraph(faces)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if err := g.Seal(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", joinErr(err))
	}
	g.SetCache(operators.SpinNetworkAmplitude(g), operators.ReggeAction(g))

	return g, nil
}

// Tetrahedral builds the 4-node, 6-edge, 3-valent tetrahedral network.
// Complexity: O(1) (fixed table).
func Tetrahedral(opts ...BuilderOption) (*core.Graph, error) {
	return Network(NetworkTetrahedral, opts...)
}

// Cubical builds the 8-node, 12-edge, 3-valent cubical network.
// Complexity: O(1) (fixed table).
func Cubical(opts ...BuilderOption) (*core.Graph, error) {
	return Network(NetworkCubical, opts...)
}

// Octahedral builds the 6-node, 12-edge, 4-valent octahedral network.
// Complexity: O(1) (fixed table).
func Octahedral(opts ...BuilderOption) (*core.Graph, error) {
	return Network(NetworkOctahedral, opts...)
}

// Network builds the baked network identified by name.
// Unknown names return ErrUnknownNetwork.
func Network(name NetworkName, opts ...BuilderOption) (*core.Graph, error) {
	t, ok := networkTables[name]
	if !ok {
		return nil, fmt.Errorf("%s(%d): %w", MethodNetwork, int(name), ErrUnknownNetwork)
	}

	g, err := BuildGraph(t.faces, opts, platonicShell(t))
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", MethodNetwork, name, err)
	}

	return g, nil
}

// joinErr tags a core error as a construction failure while keeping it
// reachable through errors.Is.
func joinErr(err error) error {
	return errors.Join(ErrConstructFailed, err)
}
