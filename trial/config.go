package trial

import (
	"fmt"

	"github.com/katalvlaran/randmst/builder"
)

const (
	methodValidate = "Validate"
	methodRun      = "Run"
)

// DefaultRepetitions is the number of trials per size when none is configured.
const DefaultRepetitions = 5

// Config describes one sweep: for every size in Sizes, Repetitions graphs are
// generated with Model and Threshold and their MST weights are averaged.
//
// Zero TrialWorkers or GenWorkers means serial. Seed 0 maps to rng.DefaultSeed.
type Config struct {
	Sizes        []int
	Repetitions  int
	Model        builder.Model
	Dimension    int
	Threshold    builder.Threshold
	Seed         int64
	TrialWorkers int
	GenWorkers   int
}

// Validate reports the first configuration problem, in priority order:
// sizes, repetitions, model and dimension, threshold, workers.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%s: no sizes: %w", methodValidate, ErrInvalidSize)
	}
	for i, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%s: sizes[%d]=%d: %w", methodValidate, i, n, ErrInvalidSize)
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("%s: repetitions=%d: %w", methodValidate, c.Repetitions, ErrInvalidRepetitions)
	}
	if err := builder.ValidateModel(c.Model, c.Dimension); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if err := c.Threshold.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if c.TrialWorkers < 0 || c.GenWorkers < 0 {
		return fmt.Errorf("%s: trial_workers=%d gen_workers=%d: %w",
			methodValidate, c.TrialWorkers, c.GenWorkers, ErrInvalidWorkers)
	}

	return nil
}

func (c Config) trialWorkers() int { return max(c.TrialWorkers, 1) }

func (c Config) genWorkers() int { return max(c.GenWorkers, 1) }

// builderOptions returns the generator options shared by every trial.
func (c Config) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithWorkers(c.genWorkers())}
	if c.Dimension >= 1 {
		opts = append(opts, builder.WithDimension(c.Dimension))
	}

	return opts
}
