package dsu

import "fmt"

// root marks a self-rooted element in the parent arena.
const root = -1

// DSU is a disjoint-set forest with path compression and union by rank.
type DSU struct {
	parent     []int
	rank       []int
	components int
}

// New creates a DSU of n singleton components (ids 0..n-1).
// Panics if n < 0.
// Complexity: O(n) time and memory.
func New(n int) *DSU {
	if n < 0 {
		panic(fmt.Sprintf("dsu: negative size %d", n))
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = root
	}

	return &DSU{
		parent:     parent,
		rank:       make([]int, n),
		components: n,
	}
}

// Len returns the number of elements managed by the DSU.
func (d *DSU) Len() int { return len(d.parent) }

// Components returns the current number of disjoint components.
func (d *DSU) Components() int { return d.components }

// Find returns the representative of x's component.
// Two passes: walk up to the root, then point every node on the path at it.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) int {
	d.check(x)

	// Walk to the root.
	r := x
	for d.parent[r] != root {
		r = d.parent[r]
	}
	// Path compression: re-point every visited node directly at r.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], r
	}

	return r
}

// Union merges the components containing x and y and reports whether a merge
// happened. The lower-rank root goes under the higher-rank root; on equal rank
// y's root goes under x's root and x's root rank grows by one.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.components--

	return true
}

// Connected reports whether x and y share a component.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Rank returns the rank currently stored for x (meaningful only for roots).
func (d *DSU) Rank(x int) int {
	d.check(x)

	return d.rank[x]
}

// check asserts that x addresses the arena.
func (d *DSU) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("dsu: node %d out of range [0,%d)", x, len(d.parent)))
	}
}
