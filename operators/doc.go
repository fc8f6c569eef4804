// SPDX-License-Identifier: MIT
// Package: spinfoam/operators
//
// Package operators evaluates quantum-geometry observables on a sealed core.Graph.
//
// What:
//   - SpinNetworkAmplitude, ReggeAction: the two cached scalars of a network.
//   - CheckGaussConstraint / GaussResidual: signed spin balance per node.
//   - WilsonLoop: trace of an ordered holonomy product.
//   - VolumeOperator, HamiltonianConstraint, CurvatureOperator, CurvatureField.
//   - TransitionAmplitude between two cached states; Cosmology summary.
//
// Slice-level helpers (AmplitudeOf, ActionOf, CurvatureOf) operate on snapshots
// returned by Graph.Nodes/Graph.Edges so callers that hold a working copy of the
// edge arena (the evolution step) share the exact accumulation order.
//
// Determinism:
//   - Every loop walks ids in ascending order; results are bit-reproducible.
//
// Errors:
//   - core.ErrUnknownNode, core.ErrOutOfRangeEdgeID (wrapped with the method name).
//   - ErrDegenerateVolume from Cosmology.
//   - ErrNilGraph for nil inputs.
package operators
