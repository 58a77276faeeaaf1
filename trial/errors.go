// Package trial: sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Run validates the whole Config before any trial starts.

package trial

import "errors"

// ErrInvalidSize indicates an empty size list or a size below 1.
var ErrInvalidSize = errors.New("trial: invalid graph size")

// ErrInvalidRepetitions indicates a repetition count below 1.
var ErrInvalidRepetitions = errors.New("trial: repetitions must be positive")

// ErrInvalidWorkers indicates a negative worker count.
var ErrInvalidWorkers = errors.New("trial: worker count must be non-negative")
