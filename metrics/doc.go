// Package metrics exposes Prometheus instrumentation for trial sweeps:
// trial counts by outcome, per-phase durations, retained edge counts and the
// running mean MST weight per size.
package metrics
