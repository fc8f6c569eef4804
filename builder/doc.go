// SPDX-License-Identifier: MIT
// Package builder constructs the canonical spin networks used by spinfoam.
//
// Each factory (Tetrahedral, Cubical, Octahedral) allocates nodes with
// ascending ids, applies a baked Platonic edge table in order, seals the
// graph, and stores the initial SpinNetworkAmplitude and ReggeAction in its
// cache. Network dispatches by NetworkName for callers that select a network
// from configuration.
//
// Components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holonomy seed and edge orientation overrides.
//   - Network tables (variants_platonic.go):
//     – node count, valence, node spin, declared faces, holonomy seed.
//     – edge list with spin codes; j = 0.5·(code+1).
//   - Constructor: the single table-driven shell builder (impl_platonic.go).
//
// Guarantees:
//
//   - Deterministic and bit-reproducible for equal options.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime errors are sentinel-wrapped (ErrUnknownNetwork, ErrConstructFailed)
//     and only surface programmer errors in the baked tables.
package builder
