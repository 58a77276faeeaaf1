// SPDX-License-Identifier: MIT
// Package: randmst/builder
//
// impl_direct.go - direct-sample generation.
//
// Canonical model:
//   - Every unordered pair {x,y}, x<y, gets one independent U[0,1) draw as its weight.
//   - The edge is kept iff weight < cut.
//
// Determinism:
//   - Stable trial order: x asc, then y asc (y > x). Draw k belongs to the k-th pair.
//   - The draw is consumed whether or not the edge is kept.
//
// Complexity:
//   - Time: O(n²) draws. Space: O(k) for k retained edges.

package builder

import "github.com/katalvlaran/randmst/core"

// generateDirect appends every retained direct-sample edge to g.
// Endpoints are in range and distinct by construction, weights are in [0,1).
func generateDirect(g *core.Graph, cfg builderConfig, cut float64) {
	n := g.N()
	weight := DirectWeightFn(cfg.src)
	buf := make([]core.Edge, 0, min(n, maxCapacityEstimate))

	var (
		x, y int
		w    float64
	)
	for x = 0; x < n-1; x++ {
		for y = x + 1; y < n; y++ {
			w = weight(x, y)
			if w < cut {
				buf = append(buf, core.Edge{Weight: w, U: x, V: y})
			}
		}
		// Flush per row to keep the scratch buffer small.
		g.AppendEdges(buf)
		buf = buf[:0]
	}
}
