// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// constants.go — method tags and the reference-experiment defaults.
//
// The pruning presets reproduce the empirically tuned cuts of the reference
// experiment. They are defaults, not derived bounds: no formula for other
// dimensions is implied.

package builder

// Method tags used as error-context prefixes.
const (
	methodGenerate  = "Generate"
	methodComplete  = "Complete"
	methodThreshold = "Threshold"
)

// minVertices is the smallest node count a generator accepts.
const minVertices = 1

// Direct-sample preset: threshold(n) = 1 · n^-0.74.
const (
	DirectScale    = 1.0
	DirectExponent = -0.74
)

// Four-dimensional coordinate-distance preset: threshold(n) = 1.1 · n^-0.18.
const (
	Euclidean4DDimension = 4
	Euclidean4DScale     = 1.1
	Euclidean4DExponent  = -0.18
)
