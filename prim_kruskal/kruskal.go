// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on the index-addressed *core.Graph and reports a Result instead of failing on disconnection.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/randmst/core"
	"github.com/katalvlaran/randmst/dsu"
)

// Kruskal computes the Minimum Spanning Tree (or, when the retained edges do
// not span the graph, a minimum spanning forest) of g.
// It uses a DSU with iterative path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph   : if g is nil or has no nodes.
//   - ErrEdgeOutOfRange : if any edge endpoint lies outside [0,n), u == v, or the weight is negative/NaN.
//
// A disconnected edge set is NOT an error: the partial Result comes back with
// Complete == false (see Result.Err for an ErrDisconnected value).
//
// Steps:
//  1. Validate g and every edge (before the DSU exists).
//  2. Copy the edges and sort them by ascending weight (stable: ties keep generation order).
//  3. Initialize a DSU over the n node ids.
//  4. Scan: stop as soon as n−1 edges are selected (checked before the next edge is examined).
//     For each examined edge update Scanned and MaxWeight; if find(u) != find(v), union and select.
//  5. Complete = (selected == n−1). Exhausted edges leave partial totals with Complete == false.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate graph and edges.
	if err := validate(g); err != nil {
		return Result{}, err
	}
	o := resolve(opts)
	n := g.N()

	// 2. Sort a copy so the caller's graph is untouched.
	edges := make([]core.Edge, g.EdgeCount())
	copy(edges, g.Edges())
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Fresh DSU owned by this call.
	sets := dsu.New(n)

	// 4. Scan in ascending order.
	var res Result
	if o.CollectEdges {
		res.Selected = make([]core.Edge, 0, n-1)
	}
	for _, e := range edges {
		// Efficiency: the tree is already spanning; remaining edges cannot change it.
		if res.Edges == n-1 {
			break
		}
		res.Scanned++
		if e.Weight > res.MaxWeight {
			res.MaxWeight = e.Weight
		}
		// Only edges joining two components are accepted.
		if sets.Union(e.U, e.V) {
			res.TotalWeight += e.Weight
			res.Edges++
			if o.CollectEdges {
				res.Selected = append(res.Selected, e)
			}
		}
	}

	// 5. Terminal state.
	res.Complete = res.Edges == n-1

	return res, nil
}
