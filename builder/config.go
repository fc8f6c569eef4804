// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • holonomy    = nil  (use the network's baked seed)
//   • orientation = DefaultOrientation (+1)
//   • faces       = -1   (use the network's declared face count)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// holonomy overrides the baked SU2Element seed when non-nil.
	holonomy *holonomySeed
	// orientation is applied to every emitted edge (±1).
	orientation int
	// faces overrides the declared face count when ≥ 0.
	faces int
}

// noFacesOverride marks the faces knob as unset.
const noFacesOverride = -1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		holonomy:    nil,
		orientation: DefaultOrientation,
		faces:       noFacesOverride,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// seedFor resolves the holonomy seed for t.
func (c builderConfig) seedFor(t networkTable) holonomySeed {
	if c.holonomy != nil {
		return *c.holonomy
	}

	return t.seed
}
