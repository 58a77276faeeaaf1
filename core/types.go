// Package core defines the central Graph and Edge types of one random graph
// instance: n index-addressed nodes, an optional coordinate arena and the
// collection of materialized (retained) edges.
//
// This file declares Edge, Graph, the sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeSize     - node count below zero.
//	ErrNodeOutOfRange   - an edge endpoint outside [0, n).
//	ErrSelfLoop         - an edge with u == v.
//	ErrBadWeight        - a negative or NaN edge weight.
//	ErrCoordinateShape  - coordinate arena length is not n*d.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates a graph was requested with n < 0.
	ErrNegativeSize = errors.New("core: negative node count")

	// ErrNodeOutOfRange indicates an edge referenced a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative or NaN weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrCoordinateShape indicates a coordinate arena that does not hold exactly n*d values.
	ErrCoordinateShape = errors.New("core: coordinate arena has wrong shape")
)

// Edge is one materialized edge: a non-negative weight between two distinct
// node ids. Edges are generated once and never mutated.
type Edge struct {
	// Weight is the cost of the edge.
	Weight float64

	// U is the smaller endpoint as generated (u < v for builder output).
	U int

	// V is the other endpoint.
	V int
}

// Graph is one generated instance. It owns its node count, the optional
// coordinate arena (row-major, n rows of dim values) and its edge collection.
// Duplicate pairs are not rejected; Kruskal discards them through the DSU.
//
// A Graph is owned by a single trial and is not safe for concurrent mutation.
type Graph struct {
	n      int
	dim    int
	coords []float64
	edges  []Edge
}

// NewGraph returns an empty graph over nodes 0..n-1 with room for capHint edges.
func NewGraph(n, capHint int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if capHint < 0 {
		capHint = 0
	}

	return &Graph{n: n, edges: make([]Edge, 0, capHint)}, nil
}
