// SPDX-License-Identifier: MIT
// Package: spinfoam/evolve
//
// Package evolve advances a sealed spin network in discrete time.
//
// Step applies one in-place holonomy update:
//
//	for e in edge-id order:
//	    c_s = Curvature(source(e)), c_t = Curvature(target(e))   // current holonomies
//	    h_e ← h_e · (1 + i·dt·(c_s + c_t)/2)
//
// Edges updated earlier in the same step are seen updated by later edges.
// The cached amplitude and action are recomputed afterwards. dt = 0 leaves
// every field bit-identical.
//
// Engine.Run repeats Step, producing a Trajectory of Frames (step 0 is the
// initial state). Runs carry a uuid run id, emit OpenTelemetry spans and
// Prometheus metrics, log at klog verbosity 2, and forward frames to an
// optional Recorder (see package store).
package evolve
