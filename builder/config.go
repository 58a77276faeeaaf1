// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • src       = nil   (generation fails with ErrNeedRandSource unless set)
//   • dim       = 0     (direct-sample needs none; coordinate mode requires ≥ 1)
//   • workers   = 1     (serial pair enumeration)
//   • capHint   = -1    (estimate from the threshold)

package builder

import "github.com/katalvlaran/randmst/rng"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// Random source; nil means “not configured”.
	src rng.Source
	// Coordinate dimension for CoordinateDistance.
	dim int
	// Number of row partitions evaluated concurrently (coordinate mode only).
	workers int
	// Initial edge capacity; negative means “estimate”.
	capHint int
}

const (
	defaultWorkers = 1
	defaultCapHint = -1
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		src:     nil,
		dim:     0,
		workers: defaultWorkers,
		capHint: defaultCapHint,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
