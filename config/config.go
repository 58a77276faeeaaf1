// Package config loads sweep configuration from YAML and turns it into a
// trial.Config.
//
// A minimal file:
//
//	model: euclidean
//	dimension: 4
//	sizes: [128, 256, 512]
//
// Omitted fields take defaults: threshold from builder.PresetFor, 5 repetitions,
// serial workers. An explicit repetitions value must be at least 1.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/trial"
)

// ErrInvalidConfig indicates a malformed or inconsistent configuration document.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default sweep bounds: powers of two from 2^7 to 2^18.
const (
	DefaultMinSize = 128
	DefaultMaxSize = 262144
	DefaultSeed    = 1
)

// File is the YAML document describing a sweep.
type File struct {
	Model        builder.Model      `yaml:"model" validate:"known_model"`
	Dimension    int                `yaml:"dimension" validate:"gte=0,lte=64"`
	Threshold    *builder.Threshold `yaml:"threshold,omitempty"`
	Sizes        []int              `yaml:"sizes" validate:"required,min=1,dive,gte=1"`
	Repetitions  *int               `yaml:"repetitions,omitempty" validate:"omitempty,gte=1"`
	Seed         int64              `yaml:"seed"`
	TrialWorkers int                `yaml:"trial_workers" validate:"gte=0"`
	GenWorkers   int                `yaml:"gen_workers" validate:"gte=0"`
}

// Default returns the reference sweep for model: powers of two from
// DefaultMinSize to DefaultMaxSize, five repetitions and the model's preset
// threshold. The coordinate model defaults to four dimensions.
func Default(model builder.Model) File {
	dim := 0
	if model == builder.CoordinateDistance {
		dim = builder.Euclidean4DDimension
	}
	th := builder.PresetFor(model, dim)
	sizes, _ := PowersOfTwo(DefaultMinSize, DefaultMaxSize)
	reps := trial.DefaultRepetitions

	return File{
		Model:       model,
		Dimension:   dim,
		Threshold:   &th,
		Sizes:       sizes,
		Repetitions: &reps,
		Seed:        DefaultSeed,
	}
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("Load(%q): %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("Parse: empty document: %w", ErrInvalidConfig)
		}
		return File{}, fmt.Errorf("Parse: %v: %w", err, ErrInvalidConfig)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Encode writes f as YAML.
func (f File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}

	return enc.Close()
}

// ResolvedThreshold returns the configured threshold or the model preset.
func (f File) ResolvedThreshold() builder.Threshold {
	if f.Threshold != nil {
		return *f.Threshold
	}

	return builder.PresetFor(f.Model, f.Dimension)
}

// TrialConfig validates f and converts it into a trial.Config.
func (f File) TrialConfig() (trial.Config, error) {
	if err := f.Validate(); err != nil {
		return trial.Config{}, err
	}
	reps := trial.DefaultRepetitions
	if f.Repetitions != nil {
		reps = *f.Repetitions
	}
	cfg := trial.Config{
		Sizes:        append([]int(nil), f.Sizes...),
		Repetitions:  reps,
		Model:        f.Model,
		Dimension:    f.Dimension,
		Threshold:    f.ResolvedThreshold(),
		Seed:         f.Seed,
		TrialWorkers: f.TrialWorkers,
		GenWorkers:   f.GenWorkers,
	}
	if err := cfg.Validate(); err != nil {
		return trial.Config{}, fmt.Errorf("TrialConfig: %w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
