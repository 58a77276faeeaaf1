// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// impl_coordinate.go - coordinate-distance generation.
//
// Canonical model:
//   - Node i owns a point in [0,1)^d sampled once: draws i*d .. i*d+d-1.
//   - Pair weight = Euclidean distance; no draw is consumed per pair.
//   - The edge is kept iff weight < cut.
//
// Concurrency:
//   - Candidate evaluation is pure, so rows are split into contiguous chunks evaluated
//     by up to cfg.workers goroutines. Each chunk owns a private slice; chunks are merged
//     in row order, so the edge set AND order match the serial run exactly.
//
// Complexity:
//   - Time: O(n·d) draws + O(n²·d) distance evaluations. Space: O(n·d + k).

package builder

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/randmst/core"
)

// chunksPerWorker oversplits the triangular row space so that early (long)
// rows do not leave most workers idle.
const chunksPerWorker = 4

// generateCoordinate samples coordinates into g and appends every retained edge.
func generateCoordinate(g *core.Graph, cfg builderConfig, cut float64) error {
	n, dim := g.N(), cfg.dim

	coords := sampleCoordinates(cfg.src, n, dim)
	if err := g.SetCoordinates(dim, coords); err != nil {
		return fmt.Errorf("%s: %w: %w", methodGenerate, err, ErrConstructFailed)
	}
	weight := CoordinateWeightFn(coords, dim)

	if cfg.workers <= 1 || n < 2*cfg.workers {
		g.AppendEdges(scanRows(weight, n, 0, n-1, cut, nil))
		return nil
	}

	// Split rows [0, n-1) into contiguous chunks.
	chunks := cfg.workers * chunksPerWorker
	rows := n - 1
	step := (rows + chunks - 1) / chunks
	parts := make([][]core.Edge, 0, chunks)
	bounds := make([][2]int, 0, chunks)
	for lo := 0; lo < rows; lo += step {
		bounds = append(bounds, [2]int{lo, min(lo+step, rows)})
		parts = append(parts, nil)
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.workers)
	for i, b := range bounds {
		eg.Go(func() error {
			parts[i] = scanRows(weight, n, b[0], b[1], cut, nil)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}

	for _, p := range parts {
		g.AppendEdges(p)
	}

	return nil
}

// scanRows evaluates every pair (x, y) with lo ≤ x < hi and y > x, appending
// retained edges to dst in enumeration order.
func scanRows(weight WeightFn, n, lo, hi int, cut float64, dst []core.Edge) []core.Edge {
	var (
		x, y int
		w    float64
	)
	for x = lo; x < hi; x++ {
		for y = x + 1; y < n; y++ {
			w = weight(x, y)
			if w < cut {
				dst = append(dst, core.Edge{Weight: w, U: x, V: y})
			}
		}
	}

	return dst
}
