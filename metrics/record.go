package metrics

import (
	"strconv"
	"time"
)

// Trial phase and status label values.
const (
	PhaseGenerate = "generate"
	PhaseSolve    = "solve"

	StatusComplete   = "complete"
	StatusIncomplete = "incomplete"
)

// RecordTrial records one finished trial
func (r *Registry) RecordTrial(model string, complete bool, retained int, generate, solve time.Duration) {
	status := StatusComplete
	if !complete {
		status = StatusIncomplete
		r.IncompleteTrialsTotal.WithLabelValues(model).Inc()
	}
	r.TrialsTotal.WithLabelValues(model, status).Inc()
	r.TrialDuration.WithLabelValues(model, PhaseGenerate).Observe(generate.Seconds())
	r.TrialDuration.WithLabelValues(model, PhaseSolve).Observe(solve.Seconds())
	r.RetainedEdges.WithLabelValues(model).Observe(float64(retained))
}

// SetSizeWeight publishes the mean MST weight of size n
func (r *Registry) SetSizeWeight(model string, n int, mean float64) {
	r.MSTWeight.WithLabelValues(model, strconv.Itoa(n)).Set(mean)
}
