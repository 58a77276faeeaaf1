// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method tag first:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodGenerate, n, minVertices, ErrTooFewVertices)
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that the requested node count is below the minimum (1).
// Classification: invalid configuration, reported before any draw is consumed.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidThreshold indicates a structurally invalid pruning threshold:
// negative or NaN scale, or a non-finite exponent.
var ErrInvalidThreshold = errors.New("builder: invalid pruning threshold")

// ErrInvalidDimension indicates the coordinate-distance model was requested
// without a positive dimension.
var ErrInvalidDimension = errors.New("builder: invalid coordinate dimension")

// ErrUnknownModel indicates an unrecognized weight model.
var ErrUnknownModel = errors.New("builder: unknown weight model")

// ErrNeedRandSource indicates that generation requires a random source
// (WithSource/WithSeed must be set).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrConstructFailed indicates that the core graph rejected generated data.
// It signals an internal inconsistency rather than a user error.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//   • ErrTooFewVertices   — size checks first.
//   • ErrUnknownModel     — then model selection.
//   • ErrInvalidDimension — then model-specific shape.
//   • ErrInvalidThreshold — then pruning parameters.
//   • ErrNeedRandSource   — then source presence.
