// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "github.com/katalvlaran/randmst/rng"

// BuilderOption customizes a generator by mutating a builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSource provides an explicit random source. Panics on nil.
// Complexity: O(1).
func WithSource(src rng.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithSeed creates a deterministic source from seed (0 maps to rng.DefaultSeed).
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rng.FromSeed(seed)
	}
}

// WithDimension sets the coordinate dimension d (≥ 1). Panics otherwise.
// Ignored by DirectSample.
func WithDimension(d int) BuilderOption {
	if d < 1 {
		panic("builder: WithDimension(d<1)")
	}
	return func(c *builderConfig) {
		c.dim = d
	}
}

// WithWorkers partitions coordinate-mode pair evaluation across k goroutines.
// Panics if k < 1. DirectSample ignores it: its draw order defines the result.
func WithWorkers(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithWorkers(k<1)")
	}
	return func(c *builderConfig) {
		c.workers = k
	}
}

// WithCapacityHint preallocates room for k retained edges. Panics if k < 0.
func WithCapacityHint(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithCapacityHint(k<0)")
	}
	return func(c *builderConfig) {
		c.capHint = k
	}
}
