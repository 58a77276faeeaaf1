package trial

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/randmst/metrics"
)

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	logger   *zap.Logger
	metrics  *metrics.Registry
	observer func(TrialResult)
	clock    func() time.Time
}

func newRunConfig(opts ...Option) runConfig {
	rc := runConfig{
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}

// WithLogger routes progress logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("trial: WithLogger(nil)")
	}
	return func(rc *runConfig) {
		rc.logger = l
	}
}

// WithMetrics records every finished trial in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(rc *runConfig) {
		rc.metrics = r
	}
}

// WithObserver calls fn after each trial. Calls are serialized but, with
// TrialWorkers > 1, arrive in completion order rather than repetition order.
func WithObserver(fn func(TrialResult)) Option {
	return func(rc *runConfig) {
		rc.observer = fn
	}
}

// WithClock replaces time.Now for phase timings. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("trial: WithClock(nil)")
	}
	return func(rc *runConfig) {
		rc.clock = now
	}
}
