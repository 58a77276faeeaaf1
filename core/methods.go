// File: methods.go
// Role: node/coordinate accessors and the edge catalog: AddEdge/AppendEdges/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order (the builder's pair order).
// AI-HINT (file):
//   - Coordinates are attached once via SetCoordinates and never mutated afterwards.
//   - AppendEdges trusts its caller (the builder merges pre-validated partitions).

package core

import (
	"fmt"
	"math"
)

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// Dimension returns the coordinate dimension, 0 when the graph has no coordinates.
func (g *Graph) Dimension() int { return g.dim }

// SetCoordinates attaches a row-major coordinate arena of n*dim values.
// The slice is owned by the graph afterwards.
func (g *Graph) SetCoordinates(dim int, coords []float64) error {
	if dim < 1 || len(coords) != g.n*dim {
		return fmt.Errorf("SetCoordinates: dim=%d len=%d n=%d: %w", dim, len(coords), g.n, ErrCoordinateShape)
	}
	g.dim = dim
	g.coords = coords

	return nil
}

// Coordinate returns node i's coordinate vector (a view into the arena),
// or nil when the graph carries no coordinates.
func (g *Graph) Coordinate(i int) []float64 {
	if g.dim == 0 || i < 0 || i >= g.n {
		return nil
	}

	return g.coords[i*g.dim : (i+1)*g.dim : (i+1)*g.dim]
}

// AddEdge appends the edge (w, u, v) after validating endpoints and weight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(w float64, u, v int) error {
	if err := g.ValidateEdge(Edge{Weight: w, U: u, V: v}); err != nil {
		return fmt.Errorf("AddEdge(%g,%d,%d): %w", w, u, v, err)
	}
	g.edges = append(g.edges, Edge{Weight: w, U: u, V: v})

	return nil
}

// AppendEdges appends already validated edges in order.
func (g *Graph) AppendEdges(es []Edge) {
	g.edges = append(g.edges, es...)
}

// ValidateEdge checks an edge against this graph's node range and weight domain.
func (g *Graph) ValidateEdge(e Edge) error {
	if e.U < 0 || e.U >= g.n || e.V < 0 || e.V >= g.n {
		return ErrNodeOutOfRange
	}
	if e.U == e.V {
		return ErrSelfLoop
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) {
		return ErrBadWeight
	}

	return nil
}

// Edges returns the edge collection in insertion order. Callers must not mutate it.
func (g *Graph) Edges() []Edge { return g.edges }

// EdgeCount returns the number of materialized edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
