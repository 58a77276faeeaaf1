package trial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/randmst/prim_kruskal"
	"github.com/katalvlaran/randmst/trial"
)

func tr(weight, maxW float64, retained int, complete bool) trial.TrialResult {
	return trial.TrialResult{
		Retained: retained,
		Result:   prim_kruskal.Result{TotalWeight: weight, MaxWeight: maxW, Complete: complete},
	}
}

func TestSummarize(t *testing.T) {
	s := trial.Summarize(10, []trial.TrialResult{
		tr(1.0, 0.2, 20, true),
		tr(3.0, 0.4, 30, true),
		tr(0.5, 0.6, 10, false),
	})
	assert.Equal(t, 10, s.N)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, s.StdDev, 1e-12)
	assert.InDelta(t, 0.4, s.MeanMaxWeight, 1e-12)
	assert.InDelta(t, 20.0, s.MeanRetained, 1e-12)
	assert.Equal(t, 1, s.Incomplete)
	assert.False(t, s.AllComplete)
}

func TestSummarize_SingleComplete(t *testing.T) {
	s := trial.Summarize(3, []trial.TrialResult{tr(1.5, 0.9, 3, true)})
	assert.Equal(t, 1.5, s.Mean)
	assert.Zero(t, s.StdDev)
	assert.True(t, s.AllComplete)
}

func TestSummarize_NoneComplete(t *testing.T) {
	s := trial.Summarize(3, []trial.TrialResult{tr(0.1, 0.1, 1, false), tr(0, 0, 0, false)})
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.StdDev))
	assert.Equal(t, 2, s.Incomplete)
}
