package trial

import (
	"time"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/prim_kruskal"
)

// TrialResult is the outcome of one (n, rep) trial.
type TrialResult struct {
	N   int `yaml:"n" json:"n"`
	Rep int `yaml:"rep" json:"rep"`

	Result prim_kruskal.Result `yaml:"result" json:"result"`

	// Retained is the number of edges that survived the cut.
	Retained int `yaml:"retained" json:"retained"`
	// Threshold is the cut value applied at this size.
	Threshold float64 `yaml:"threshold" json:"threshold"`

	GenerateTime time.Duration `yaml:"generate_time" json:"generate_time"`
	SolveTime    time.Duration `yaml:"solve_time" json:"solve_time"`
}

// SizeSummary aggregates the trials of one size.
//
// Mean and StdDev cover complete trials only; incomplete ones are counted in
// Incomplete and never averaged in. Mean is NaN when no trial is complete.
// MeanMaxWeight and MeanRetained cover every trial.
type SizeSummary struct {
	N      int           `yaml:"n" json:"n"`
	Trials []TrialResult `yaml:"trials" json:"trials"`

	Mean          float64 `yaml:"mean" json:"mean"`
	StdDev        float64 `yaml:"stddev" json:"stddev"`
	MeanMaxWeight float64 `yaml:"mean_max_weight" json:"mean_max_weight"`
	MeanRetained  float64 `yaml:"mean_retained" json:"mean_retained"`

	Incomplete  int  `yaml:"incomplete" json:"incomplete"`
	AllComplete bool `yaml:"all_complete" json:"all_complete"`

	Elapsed time.Duration `yaml:"elapsed" json:"elapsed"`
}

// Report is the result of a whole sweep.
type Report struct {
	RunID       string            `yaml:"run_id" json:"run_id"`
	Model       builder.Model     `yaml:"model" json:"model"`
	Dimension   int               `yaml:"dimension" json:"dimension"`
	Threshold   builder.Threshold `yaml:"threshold" json:"threshold"`
	Repetitions int               `yaml:"repetitions" json:"repetitions"`
	Seed        int64             `yaml:"seed" json:"seed"`

	Sizes []SizeSummary `yaml:"sizes" json:"sizes"`

	Elapsed time.Duration `yaml:"elapsed" json:"elapsed"`
}
