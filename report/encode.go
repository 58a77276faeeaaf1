package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/trial"
)

// Format selects a report encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Encode writes rep in the given format. Table output is never verbose;
// use WriteTable for per-trial rows.
func Encode(w io.Writer, rep *trial.Report, format Format) error {
	if rep == nil {
		return fmt.Errorf("Encode: nil report")
	}
	switch format {
	case FormatTable:
		return WriteTable(w, rep, false)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode(%q): %w", format, ErrUnknownFormat)
	}
}

// document is the encoded form of a trial.Report. Statistics that may be NaN
// become null, and durations are written in seconds.
type document struct {
	RunID       string        `yaml:"run_id" json:"run_id"`
	Model       builder.Model `yaml:"model" json:"model"`
	Dimension   int           `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Threshold   thresholdDoc  `yaml:"threshold" json:"threshold"`
	Repetitions int           `yaml:"repetitions" json:"repetitions"`
	Seed        int64         `yaml:"seed" json:"seed"`
	Sizes       []sizeDoc     `yaml:"sizes" json:"sizes"`
	ElapsedSec  float64       `yaml:"elapsed_seconds" json:"elapsed_seconds"`
}

type thresholdDoc struct {
	Scale    *float64 `yaml:"scale" json:"scale"`
	Exponent float64  `yaml:"exponent" json:"exponent"`
}

type sizeDoc struct {
	N             int        `yaml:"n" json:"n"`
	Mean          *float64   `yaml:"mean" json:"mean"`
	StdDev        *float64   `yaml:"stddev" json:"stddev"`
	MeanMaxWeight float64    `yaml:"mean_max_weight" json:"mean_max_weight"`
	MeanRetained  float64    `yaml:"mean_retained" json:"mean_retained"`
	Incomplete    int        `yaml:"incomplete" json:"incomplete"`
	AllComplete   bool       `yaml:"all_complete" json:"all_complete"`
	ElapsedSec    float64    `yaml:"elapsed_seconds" json:"elapsed_seconds"`
	Trials        []trialDoc `yaml:"trials" json:"trials"`
}

type trialDoc struct {
	Rep         int      `yaml:"rep" json:"rep"`
	Weight      float64  `yaml:"weight" json:"weight"`
	Edges       int      `yaml:"edges" json:"edges"`
	MaxWeight   float64  `yaml:"max_weight" json:"max_weight"`
	Scanned     int      `yaml:"scanned" json:"scanned"`
	Retained    int      `yaml:"retained" json:"retained"`
	Cut         *float64 `yaml:"cut" json:"cut"`
	Complete    bool     `yaml:"complete" json:"complete"`
	GenerateSec float64  `yaml:"generate_seconds" json:"generate_seconds"`
	SolveSec    float64  `yaml:"solve_seconds" json:"solve_seconds"`
}

func newDocument(rep *trial.Report) document {
	doc := document{
		RunID:       rep.RunID,
		Model:       rep.Model,
		Dimension:   rep.Dimension,
		Threshold:   thresholdDoc{Scale: finite(rep.Threshold.Scale), Exponent: rep.Threshold.Exponent},
		Repetitions: rep.Repetitions,
		Seed:        rep.Seed,
		Sizes:       make([]sizeDoc, 0, len(rep.Sizes)),
		ElapsedSec:  rep.Elapsed.Seconds(),
	}
	for _, s := range rep.Sizes {
		sd := sizeDoc{
			N:             s.N,
			Mean:          finite(s.Mean),
			StdDev:        finite(s.StdDev),
			MeanMaxWeight: s.MeanMaxWeight,
			MeanRetained:  s.MeanRetained,
			Incomplete:    s.Incomplete,
			AllComplete:   s.AllComplete,
			ElapsedSec:    s.Elapsed.Seconds(),
			Trials:        make([]trialDoc, 0, len(s.Trials)),
		}
		for _, t := range s.Trials {
			sd.Trials = append(sd.Trials, trialDoc{
				Rep:         t.Rep,
				Weight:      t.Result.TotalWeight,
				Edges:       t.Result.Edges,
				MaxWeight:   t.Result.MaxWeight,
				Scanned:     t.Result.Scanned,
				Retained:    t.Retained,
				Cut:         finite(t.Threshold),
				Complete:    t.Result.Complete,
				GenerateSec: t.GenerateTime.Seconds(),
				SolveSec:    t.SolveTime.Seconds(),
			})
		}
		doc.Sizes = append(doc.Sizes, sd)
	}

	return doc
}

// finite returns nil for NaN and ±Inf, which JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
