package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randmst/dsu"
)

// TestNew_Singletons verifies that a fresh DSU has n self-rooted components.
func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Components())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Zero(t, d.Rank(i))
	}

	empty := dsu.New(0)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Components())
	assert.Panics(t, func() { dsu.New(-1) })
}

// TestUnion_RankRules exercises the three rank branches.
func TestUnion_RankRules(t *testing.T) {
	d := dsu.New(4)

	// Equal ranks: y's root under x's root, x's rank grows.
	require.True(t, d.Union(0, 1))
	assert.Equal(t, 0, d.Find(1))
	assert.Equal(t, 1, d.Rank(0))

	// Lower rank (2) under higher rank (0), no rank change.
	require.True(t, d.Union(2, 0))
	assert.Equal(t, 0, d.Find(2))
	assert.Equal(t, 1, d.Rank(0))

	// Higher rank x absorbs lower rank y.
	require.True(t, d.Union(0, 3))
	assert.Equal(t, 0, d.Find(3))
	assert.Equal(t, 1, d.Rank(0))
	assert.Equal(t, 1, d.Components())
}

// TestUnion_NoOps checks that self-unions and repeated unions leave state untouched.
func TestUnion_NoOps(t *testing.T) {
	d := dsu.New(3)
	assert.False(t, d.Union(1, 1))
	assert.Equal(t, 3, d.Components())
	assert.Zero(t, d.Rank(1))

	require.True(t, d.Union(0, 1))
	rankBefore := d.Rank(0)
	assert.False(t, d.Union(1, 0))
	assert.False(t, d.Union(0, 1))
	assert.Equal(t, rankBefore, d.Rank(0))
	assert.Equal(t, 2, d.Components())
	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(0, 2))
}

// TestFind_LargeN joins a few hundred thousand nodes into one component and
// checks that every lookup reaches the same root.
func TestFind_LargeN(t *testing.T) {
	const n = 300000
	d := dsu.New(n)
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}
	r := d.Find(n - 1)
	for _, x := range []int{0, n / 2, n - 1} {
		assert.Equal(t, r, d.Find(x))
	}
	assert.Equal(t, 1, d.Components())
}

// TestOutOfRange verifies the fail-fast assertion.
func TestOutOfRange(t *testing.T) {
	d := dsu.New(3)
	assert.PanicsWithValue(t, "dsu: node 3 out of range [0,3)", func() { d.Find(3) })
	assert.Panics(t, func() { d.Union(-1, 0) })
	assert.Panics(t, func() { d.Union(0, 7) })
	// State is untouched by the failed calls.
	assert.Equal(t, 3, d.Components())
}
