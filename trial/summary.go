package trial

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates the trials of size n.
func Summarize(n int, trials []TrialResult) SizeSummary {
	s := SizeSummary{N: n, Trials: trials, Mean: math.NaN(), StdDev: math.NaN()}
	if len(trials) == 0 {
		return s
	}

	weights := make([]float64, 0, len(trials))
	maxW := make([]float64, len(trials))
	retained := make([]float64, len(trials))
	for i, t := range trials {
		maxW[i] = t.Result.MaxWeight
		retained[i] = float64(t.Retained)
		if t.Result.Complete {
			weights = append(weights, t.Result.TotalWeight)
		} else {
			s.Incomplete++
		}
	}
	s.AllComplete = s.Incomplete == 0
	s.MeanMaxWeight = stat.Mean(maxW, nil)
	s.MeanRetained = stat.Mean(retained, nil)

	switch len(weights) {
	case 0:
	case 1:
		s.Mean, s.StdDev = weights[0], 0
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(weights, nil)
	}

	return s
}
