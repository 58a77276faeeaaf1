// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Generate(n, model, threshold, opts...). Validates, resolves cfg,
//     samples node data, enumerates candidate pairs and retains those under the cut.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/draw sequence ⇒ identical graphs (edge set AND order).
//   - Safety: never panic; return sentinel errors.
//
// AI-Hints (practical):
//   - Use WithSeed(...) or WithSource(rng.NewReplay(...)) to freeze generation.
//   - WithWorkers(k) only affects CoordinateDistance; the result is identical to k=1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randmst/core"
)

// maxCapacityEstimate bounds the automatic preallocation.
const maxCapacityEstimate = 1 << 22

// Generate builds one pruned random graph over nodes 0..n-1.
//
// Candidate pairs are enumerated as x ascending, y ascending, y > x. Each
// pair's weight comes from the model; the edge is materialized iff
// weight < th.At(n).
//
//   - DirectSample: one draw per candidate pair, in enumeration order.
//   - CoordinateDistance: n·d draws up front (node-major), then pure distances.
//
// Errors (all wrapped with "Generate: ..."):
//   - ErrTooFewVertices, ErrUnknownModel, ErrInvalidDimension, ErrInvalidThreshold,
//     ErrNeedRandSource for invalid configuration (no draw is consumed);
//   - ErrConstructFailed if the core graph rejects generated data.
//
// Complexity: O(n²) candidate evaluations (·d for coordinates), O(k) memory for k retained edges.
func Generate(n int, model Model, th Threshold, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate everything before touching the source.
	if err := validateGenerate(n, model, th, cfg); err != nil {
		return nil, err
	}

	// 2) Allocate the graph with a capacity estimate.
	capHint := cfg.capHint
	if capHint < 0 {
		capHint = estimateCapacity(n, model, th)
	}
	g, err := core.NewGraph(n, capHint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodGenerate, err, ErrConstructFailed)
	}

	// 3) Dispatch by model.
	cut := th.At(n)
	switch model {
	case DirectSample:
		generateDirect(g, cfg, cut)
	case CoordinateDistance:
		if err = generateCoordinate(g, cfg, cut); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph on n nodes with weights from fn, in the
// same pair order Generate uses. It consumes no randomness of its own.
// Complexity: O(n²).
func Complete(n int, fn WeightFn) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minVertices, ErrTooFewVertices)
	}
	if fn == nil {
		return nil, fmt.Errorf("%s: nil weight function: %w", methodComplete, ErrConstructFailed)
	}
	g, err := core.NewGraph(n, n*(n-1)/2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodComplete, err, ErrConstructFailed)
	}
	for x := 0; x < n-1; x++ {
		for y := x + 1; y < n; y++ {
			w := fn(x, y)
			if err = g.AddEdge(w, x, y); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", methodComplete, err, ErrConstructFailed)
			}
		}
	}

	return g, nil
}

// estimateCapacity guesses the retained edge count to limit slice regrowth.
func estimateCapacity(n int, model Model, th Threshold) int {
	pairs := float64(n) * float64(n-1) / 2
	cut := th.At(n)
	var est float64
	switch model {
	case DirectSample:
		est = pairs * min(cut, 1)
	default:
		// Distances are not uniform; n retained per node is a cheap starting point.
		est = min(pairs, 8*float64(n))
	}
	if est > maxCapacityEstimate {
		return maxCapacityEstimate
	}

	return int(est)
}
