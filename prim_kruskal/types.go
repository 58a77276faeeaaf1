// Package prim_kruskal defines the MST result, configuration options and
// sentinel errors. It supports selecting between Kruskal and Prim via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/randmst/core"
)

// ErrInvalidGraph indicates that the MST algorithms need a non-nil graph with at least one node.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-empty graph")

// ErrEdgeOutOfRange indicates an edge whose endpoints fall outside [0,n), coincide,
// or whose weight is not a non-negative number. It is an internal-consistency error.
var ErrEdgeOutOfRange = errors.New("prim_kruskal: edge references an invalid node")

// ErrDisconnected indicates that the retained edges do not span every node,
// so only a spanning forest could be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// State is the terminal state of an MST scan.
type State int

const (
	// StateComplete means n−1 edges were selected.
	StateComplete State = iota + 1

	// StateExhausted means the edges ran out first; the result is a spanning forest.
	StateExhausted
)

// String returns "complete" or "exhausted".
func (s State) String() string {
	switch s {
	case StateComplete:
		return "complete"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one MST computation.
//
// Fields:
//
//	TotalWeight — sum of the selected edge weights (partial when incomplete).
//	Edges       — number of selected edges.
//	MaxWeight   — maximum weight among scanned edges, selected or not (0 when Scanned == 0).
//	Scanned     — number of edges examined before the scan stopped.
//	Complete    — true iff Edges == n−1.
//	Selected    — the chosen edges in selection order; filled only with WithCollectEdges.
type Result struct {
	TotalWeight float64     `yaml:"total_weight" json:"total_weight"`
	Edges       int         `yaml:"edges" json:"edges"`
	MaxWeight   float64     `yaml:"max_weight" json:"max_weight"`
	Scanned     int         `yaml:"scanned" json:"scanned"`
	Complete    bool        `yaml:"complete" json:"complete"`
	Selected    []core.Edge `yaml:"-" json:"-"`
}

// State reports the terminal state of the scan.
func (r Result) State() State {
	if r.Complete {
		return StateComplete
	}

	return StateExhausted
}

// Err returns ErrDisconnected for an incomplete result and nil otherwise.
func (r Result) Err() error {
	if r.Complete {
		return nil
	}

	return ErrDisconnected
}

// MethodPrim selects Prim's algorithm (grow from node 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method       string — one of MethodPrim or MethodKruskal.
//	CollectEdges bool   — fill Result.Selected.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// CollectEdges records the selected edges in Result.Selected.
	CollectEdges bool
}

// Option configures MSTOptions. All Option functions modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithCollectEdges returns an Option that records the selected edges.
func WithCollectEdges() Option {
	return func(opts *MSTOptions) {
		opts.CollectEdges = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal without edge collection.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:       MethodKruskal,
		CollectEdges: false,
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph).
//	– Otherwise:     returns ErrInvalidGraph.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	var extra []Option
	if opts.CollectEdges {
		extra = append(extra, WithCollectEdges())
	}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, extra...)
	case MethodPrim:
		return Prim(graph, extra...)
	default:
		return Result{}, ErrInvalidGraph
	}
}

// validate checks the graph and every edge before any DSU/heap state exists.
func validate(graph *core.Graph) error {
	if graph == nil || graph.N() == 0 {
		return ErrInvalidGraph
	}
	for i, e := range graph.Edges() {
		if err := graph.ValidateEdge(e); err != nil {
			return fmt.Errorf("validate: edge %d (%g,%d,%d): %w: %w", i, e.Weight, e.U, e.V, err, ErrEdgeOutOfRange)
		}
	}

	return nil
}
