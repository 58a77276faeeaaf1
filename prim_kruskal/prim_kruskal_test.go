package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/core"
	"github.com/katalvlaran/randmst/prim_kruskal"
	"github.com/katalvlaran/randmst/rng"
)

// buildGraph constructs a graph over n nodes from (w,u,v) triples.
func buildGraph(t testing.TB, n int, triples [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, len(triples))
	require.NoError(t, err)
	for _, tr := range triples {
		require.NoError(t, g.AddEdge(tr[0], int(tr[1]), int(tr[2])))
	}

	return g
}

// TestKruskal_FourNodeScenario: the full 4-node edge set with weights 1..6.
// The MST is the star around node 0 with total weight 6.
func TestKruskal_FourNodeScenario(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{
		{1, 0, 1}, {2, 0, 2}, {3, 0, 3}, {4, 1, 2}, {5, 1, 3}, {6, 2, 3},
	})

	res, err := prim_kruskal.Kruskal(g, prim_kruskal.WithCollectEdges())
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.TotalWeight)
	assert.Equal(t, 3, res.Edges)
	assert.True(t, res.Complete)
	assert.Equal(t, prim_kruskal.StateComplete, res.State())
	assert.NoError(t, res.Err())
	assert.Equal(t, []core.Edge{{Weight: 1, U: 0, V: 1}, {Weight: 2, U: 0, V: 2}, {Weight: 3, U: 0, V: 3}}, res.Selected)
	// Early exit: the scan stops right after the third selection.
	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, 3.0, res.MaxWeight)
}

// TestKruskal_MaxWeightCountsRejectedEdges: rejected edges still raise MaxWeight.
func TestKruskal_MaxWeightCountsRejectedEdges(t *testing.T) {
	// Triangle 0-1-2 with a heavy chord examined before node 3 joins.
	g := buildGraph(t, 4, [][3]float64{
		{1, 0, 1}, {2, 1, 2}, {3, 0, 2}, {4, 2, 3},
	})
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.TotalWeight)
	assert.Equal(t, 4, res.Scanned)
	assert.Equal(t, 4.0, res.MaxWeight)

	// A rejected duplicate sits between two selections.
	g2 := buildGraph(t, 3, [][3]float64{{1, 0, 1}, {2, 0, 1}, {5, 1, 2}, {9, 0, 2}})
	res2, err := prim_kruskal.Kruskal(g2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res2.TotalWeight)
	assert.Equal(t, 3, res2.Scanned)
	assert.Equal(t, 5.0, res2.MaxWeight)
}

// TestKruskal_NoEdgesRetained: five nodes, zero retained edges.
func TestKruskal_NoEdgesRetained(t *testing.T) {
	g, err := builder.Generate(5, builder.DirectSample, builder.Threshold{Scale: 0, Exponent: 0}, builder.WithSeed(1))
	require.NoError(t, err)
	require.Zero(t, g.EdgeCount())

	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Zero(t, res.Edges)
	assert.Zero(t, res.TotalWeight)
	assert.Zero(t, res.Scanned)
	assert.Zero(t, res.MaxWeight)
	assert.False(t, res.Complete)
	assert.Equal(t, prim_kruskal.StateExhausted, res.State())
	assert.ErrorIs(t, res.Err(), prim_kruskal.ErrDisconnected)
}

// TestKruskal_PartialForest: two components keep their partial totals.
func TestKruskal_PartialForest(t *testing.T) {
	g := buildGraph(t, 5, [][3]float64{{0.1, 0, 1}, {0.2, 1, 2}, {0.3, 3, 4}, {0.4, 0, 2}})
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, 3, res.Edges)
	assert.InDelta(t, 0.6, res.TotalWeight, 1e-12)
	assert.Equal(t, 4, res.Scanned)
	assert.Equal(t, 0.4, res.MaxWeight)
}

// TestKruskal_SingleNode: the empty tree is complete and nothing is scanned.
func TestKruskal_SingleNode(t *testing.T) {
	g, err := core.NewGraph(1, 0)
	require.NoError(t, err)
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Zero(t, res.Edges)
	assert.Zero(t, res.Scanned)
}

// TestKruskal_Validation covers invalid graphs and invalid edges.
func TestKruskal_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty, err := core.NewGraph(0, 0)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	// AppendEdges bypasses validation; Kruskal must catch it before touching the DSU.
	g, err := core.NewGraph(3, 0)
	require.NoError(t, err)
	g.AppendEdges([]core.Edge{{Weight: 0.1, U: 0, V: 1}, {Weight: 0.2, U: 1, V: 3}})
	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrEdgeOutOfRange)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, err = prim_kruskal.Prim(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrEdgeOutOfRange)
}

// TestKruskal_DoesNotMutateGraph ensures sorting happens on a copy.
func TestKruskal_DoesNotMutateGraph(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0.9, 0, 1}, {0.1, 1, 2}, {0.5, 0, 2}})
	before := append([]core.Edge(nil), g.Edges()...)
	_, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

// TestKruskal_CompleteGraphAlwaysSpans: distinct finite weights on the complete
// edge set always give n−1 edges.
func TestKruskal_CompleteGraphAlwaysSpans(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 3, 10, 57, 200} {
		g, err := builder.Complete(n, func(_, _ int) float64 { return r.Float64() })
		require.NoError(t, err)
		res, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.True(t, res.Complete, "n=%d", n)
		assert.Equal(t, n-1, res.Edges, "n=%d", n)
	}
}

// TestKruskal_DuplicatePairsHarmless: duplicates of a pair never double count.
func TestKruskal_DuplicatePairsHarmless(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0.1, 0, 1}, {0.1, 1, 0}, {0.2, 0, 1}, {0.3, 1, 2}})
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.InDelta(t, 0.4, res.TotalWeight, 1e-12)
}

// TestPrim_AgreesWithKruskal compares totals on random pruned graphs.
func TestPrim_AgreesWithKruskal(t *testing.T) {
	cases := []struct {
		model builder.Model
		n     int
	}{
		{builder.DirectSample, 128},
		{builder.DirectSample, 300},
		{builder.CoordinateDistance, 128},
		{builder.CoordinateDistance, 256},
	}
	for _, tc := range cases {
		g, err := builder.Generate(tc.n, tc.model, builder.PresetFor(tc.model, 4),
			builder.WithSeed(int64(tc.n)), builder.WithDimension(4))
		require.NoError(t, err)

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		p, err := prim_kruskal.Prim(g)
		require.NoError(t, err)

		if !k.Complete {
			assert.False(t, p.Complete)
			continue
		}
		assert.True(t, p.Complete)
		assert.Equal(t, k.Edges, p.Edges)
		assert.InDelta(t, k.TotalWeight, p.TotalWeight, 1e-9)
	}
}

// TestThresholdCut_CompleteWeightUnchanged: for one draw sequence, moving the
// cut leaves the MST weight unchanged as long as the result stays complete.
func TestThresholdCut_CompleteWeightUnchanged(t *testing.T) {
	const n = 256
	draws := rng.Record(rng.FromSeed(77), n*(n-1)/2)
	run := func(scale float64) prim_kruskal.Result {
		g, err := builder.Generate(n, builder.DirectSample,
			builder.Threshold{Scale: scale, Exponent: builder.DirectExponent},
			builder.WithSource(rng.NewReplay(draws)))
		require.NoError(t, err)
		res, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		return res
	}

	prev := run(4)
	require.True(t, prev.Complete)
	for _, s := range []float64{2, 1.5, 1, 0.75, 0.5, 0.25} {
		cur := run(s)
		if !cur.Complete {
			break
		}
		assert.Equal(t, prev.TotalWeight, cur.TotalWeight, "scale=%g", s)
		assert.Equal(t, prev.MaxWeight, cur.MaxWeight, "scale=%g", s)
		prev = cur
	}
}

// TestCompute_Dispatch covers the method switch.
func TestCompute_Dispatch(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{1, 0, 1}, {2, 1, 2}, {3, 0, 2}})

	k, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, k.TotalWeight)

	opts := prim_kruskal.DefaultOptions()
	prim_kruskal.WithMethod(prim_kruskal.MethodPrim)(&opts)
	prim_kruskal.WithCollectEdges()(&opts)
	p, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.TotalWeight)
	assert.Len(t, p.Selected, 2)

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}
