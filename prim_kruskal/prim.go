// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from node 0 over the retained edges of a *core.Graph using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/randmst/core"
)

// Prim computes the MST of g by growing outwards from node 0 using a min-heap.
// It serves as an independent cross-check of Kruskal on the same edge set:
// for a connected edge set both return the same TotalWeight.
//
// Error Conditions:
//   - ErrInvalidGraph   : if g is nil or has no nodes.
//   - ErrEdgeOutOfRange : if any edge is invalid.
//
// When node 0's component does not reach every node the Result has
// Complete == false and covers that component only.
//
// Steps:
//  1. Validate the graph and its edges.
//  2. Build an undirected adjacency list (both directions per edge).
//  3. Mark node 0 visited and push its incident edges.
//  4. While the heap is non-empty and fewer than n−1 edges are selected:
//     a. Pop the smallest-weight arc (u→v); skip it if v is visited.
//     b. Otherwise select it, mark v, accumulate weight, push v's arcs to unvisited nodes.
//  5. Complete = (selected == n−1).
//
// MaxWeight for Prim is the largest selected weight; Scanned counts popped arcs.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return Result{}, err
	}
	o := resolve(opts)
	n := g.N()

	// 2. Adjacency: arcs[u] lists every edge incident to u, oriented away from u.
	arcs := make([][]core.Edge, n)
	for _, e := range g.Edges() {
		arcs[e.U] = append(arcs[e.U], e)
		arcs[e.V] = append(arcs[e.V], core.Edge{Weight: e.Weight, U: e.V, V: e.U})
	}

	// 3. Seed from node 0.
	visited := make([]bool, n)
	visited[0] = true
	pq := &edgePQ{}
	heap.Init(pq)
	for _, a := range arcs[0] {
		heap.Push(pq, a)
	}

	var res Result
	if o.CollectEdges {
		res.Selected = make([]core.Edge, 0, n-1)
	}

	// 4. Main loop.
	for pq.Len() > 0 && res.Edges < n-1 {
		a := heap.Pop(pq).(core.Edge)
		res.Scanned++
		if visited[a.V] {
			continue
		}
		visited[a.V] = true
		res.Edges++
		res.TotalWeight += a.Weight
		if a.Weight > res.MaxWeight {
			res.MaxWeight = a.Weight
		}
		if o.CollectEdges {
			res.Selected = append(res.Selected, a)
		}
		for _, next := range arcs[a.V] {
			if !visited[next.V] {
				heap.Push(pq, next)
			}
		}
	}

	// 5. Terminal state.
	res.Complete = res.Edges == n-1

	return res, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge, ordered by Weight.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a core.Edge; called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (pq *edgePQ) Pop() any {
	old := *pq
	k := len(old)
	e := old[k-1]
	*pq = old[:k-1]

	return e
}
