// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// threshold.go — the size-dependent pruning cut.
//
// Contract:
//   • At(n) = Scale · n^Exponent; an edge is retained iff weight < At(n).
//   • Scale ≥ 0 (0 retains nothing), Scale may be +Inf (retains everything).
//   • Exponent must be finite.
//
// AI-Hints:
//   • Smaller Scale or a more negative Exponent (for n > 1) can only shrink the retained set.
//   • Presets are the reference experiment's tuned constants, not general bounds.

package builder

import (
	"fmt"
	"math"
)

// Threshold configures the pruning cut threshold(n) = Scale · n^Exponent.
type Threshold struct {
	Scale    float64 `yaml:"scale" json:"scale"`
	Exponent float64 `yaml:"exponent" json:"exponent"`
}

// DirectDefaults returns the direct-sample preset (1 · n^-0.74).
func DirectDefaults() Threshold {
	return Threshold{Scale: DirectScale, Exponent: DirectExponent}
}

// Euclidean4DDefaults returns the 4-D coordinate-distance preset (1.1 · n^-0.18).
func Euclidean4DDefaults() Threshold {
	return Threshold{Scale: Euclidean4DScale, Exponent: Euclidean4DExponent}
}

// NoPruning returns a threshold that retains every candidate pair.
func NoPruning() Threshold {
	return Threshold{Scale: math.Inf(1), Exponent: 0}
}

// Validate reports ErrInvalidThreshold for a negative/NaN scale or a non-finite exponent.
func (t Threshold) Validate() error {
	if math.IsNaN(t.Scale) || t.Scale < 0 {
		return fmt.Errorf("%s: scale=%g must be ≥ 0: %w", methodThreshold, t.Scale, ErrInvalidThreshold)
	}
	if math.IsNaN(t.Exponent) || math.IsInf(t.Exponent, 0) {
		return fmt.Errorf("%s: exponent=%g must be finite: %w", methodThreshold, t.Exponent, ErrInvalidThreshold)
	}

	return nil
}

// At returns the cut for a graph of n nodes.
func (t Threshold) At(n int) float64 {
	if t.Scale == 0 {
		return 0
	}

	return t.Scale * math.Pow(float64(n), t.Exponent)
}

// Keep reports whether a candidate of weight w survives the cut.
func (t Threshold) Keep(w float64, n int) bool {
	return w < t.At(n)
}

// String renders the threshold as "s·n^e".
func (t Threshold) String() string {
	return fmt.Sprintf("%g·n^%g", t.Scale, t.Exponent)
}

// PresetFor returns the reference threshold for a model, or NoPruning when
// no preset exists for the requested dimension.
func PresetFor(m Model, dim int) Threshold {
	switch {
	case m == DirectSample:
		return DirectDefaults()
	case m == CoordinateDistance && dim == Euclidean4DDimension:
		return Euclidean4DDefaults()
	default:
		return NoPruning()
	}
}
