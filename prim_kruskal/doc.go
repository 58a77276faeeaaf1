// Package prim_kruskal computes the Minimum Spanning Tree (MST) of one generated
// random graph instance: Kruskal's algorithm as the primary solver and Prim's
// algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices with minimum total weight and no cycles.
//
//   - Why here?
//     The module estimates E[MST weight] of random graphs. Graphs arrive pruned
//     (only edges under a size-dependent cut are materialized), so the edge set may
//     fail to span the nodes. That case is a defined outcome, not a crash.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: stable-sort the edges by weight, scan them in order and accept an edge iff
//     its endpoints sit in different DSU components. Stop once |V|−1 edges are selected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: grow a tree from node 0 with a min-heap of candidate arcs.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Result semantics
//
//	Scanning → Complete            (Edges == n−1)
//	         → ExhaustedIncomplete (edges ran out with Edges < n−1)
//
//   - TotalWeight and Edges are always reported, partial when incomplete.
//   - MaxWeight (Kruskal) is the heaviest edge *examined*, selected or not. It describes
//     how deep into the sorted retained edges the scan had to go.
//   - Result.Err() maps an incomplete result to ErrDisconnected for callers that
//     prefer an error value.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil graph or n == 0.
//   - ErrEdgeOutOfRange: an edge endpoint outside [0,n), a self-loop, or a negative/NaN weight.
//     Checked before any DSU state exists.
//
// Determinism: the stable sort keeps generation order for equal weights, so the
// same graph always yields the same Result.
package prim_kruskal
