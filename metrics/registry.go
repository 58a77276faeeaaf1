package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for a sweep
type Registry struct {
	// Trial Metrics
	TrialsTotal           *prometheus.CounterVec
	TrialDuration         *prometheus.HistogramVec
	RetainedEdges         *prometheus.HistogramVec
	IncompleteTrialsTotal *prometheus.CounterVec

	// Size Metrics
	MSTWeight *prometheus.GaugeVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every sweep metric registered on a
// private prometheus.Registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initTrialMetrics()
	r.initSizeMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) initTrialMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "randmst_trials_total",
			Help: "Total number of finished trials",
		},
		[]string{"model", "status"},
	)

	r.TrialDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "randmst_trial_duration_seconds",
			Help:    "Trial phase duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"model", "phase"},
	)

	r.RetainedEdges = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "randmst_retained_edges",
			Help:    "Number of edges surviving the pruning cut per trial",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
		[]string{"model"},
	)

	r.IncompleteTrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "randmst_incomplete_trials_total",
			Help: "Total number of trials whose retained edges did not span the graph",
		},
		[]string{"model"},
	)
}

func (r *Registry) initSizeMetrics() {
	r.MSTWeight = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "randmst_mst_weight",
			Help: "Mean MST weight over the complete trials of a size",
		},
		[]string{"model", "n"},
	)
}
