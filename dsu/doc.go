// Package dsu provides an index-addressed Disjoint-Set-Union (union-find) over
// the node ids 0..n-1 of a single graph instance.
//
// What & Why
//
//   - A DSU maintains a partition of elements into disjoint components and answers
//     “which component is x in?” (Find) and “merge the components of x and y” (Union)
//     in near-constant amortized time.
//   - Kruskal's algorithm uses it to reject edges whose endpoints are already connected.
//
// Representation
//
//   - parent []int: parent[x] == -1 marks x as self-rooted; otherwise it is x's parent.
//   - rank   []int: an upper bound on tree height used only as the union tie-break.
//     After path compression it is no longer an exact height.
//
// Both slices are fixed-size arenas owned by one DSU; all references are integer ids.
//
// Guarantees
//
//   - Find is iterative (walk to root, then re-point every visited node at the root),
//     so stack usage is bounded for hundreds of thousands of nodes.
//   - Find(Find(x)) == Find(x) for every x after any sequence of operations.
//   - After Union(x, y), Find(x) == Find(y) for the rest of the DSU's lifetime.
//   - Union(x, x) and unions inside one component leave parent and rank untouched.
//
// Complexity: m operations over n elements cost O(m·α(n)); memory O(n).
//
// Concurrency: a DSU is not safe for concurrent mutation; each MST computation owns one.
//
// Errors: an id outside [0,n) is an internal-consistency bug; Find and Union panic
// before touching any state.
package dsu
