package rng

import "fmt"

// Replay is a Source that hands out a fixed sequence of draws in order.
// It exists to pin generator behavior in tests: two runs over equal
// sequences must produce identical graphs.
//
// Replay panics once the sequence is exhausted; running out of draws means
// the caller's expectation of how many draws a generator consumes is wrong.
type Replay struct {
	values []float64
	pos    int
}

// NewReplay copies values into a new Replay. Every value must lie in [0,1).
// Panics otherwise (option-style validation).
func NewReplay(values []float64) *Replay {
	for i, v := range values {
		if v < 0 || v >= 1 {
			panic(fmt.Sprintf("rng: replay value %d = %g not in [0,1)", i, v))
		}
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return &Replay{values: cp}
}

// Float64 returns the next recorded draw.
func (r *Replay) Float64() float64 {
	if r.pos >= len(r.values) {
		panic(fmt.Sprintf("rng: replay exhausted after %d draws", len(r.values)))
	}
	v := r.values[r.pos]
	r.pos++

	return v
}

// Consumed reports how many draws have been handed out so far.
func (r *Replay) Consumed() int { return r.pos }

// Remaining reports how many recorded draws are left.
func (r *Replay) Remaining() int { return len(r.values) - r.pos }

// Record draws k values from src and returns them, so a live source can be
// captured once and replayed later.
func Record(src Source, k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = src.Float64()
	}

	return out
}
