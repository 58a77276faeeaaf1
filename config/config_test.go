package config_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/config"
	"github.com/katalvlaran/randmst/trial"
)

const euclideanDoc = `
model: euclidean
dimension: 4
threshold: {scale: 1.1, exponent: -0.18}
sizes: [128, 256, 512]
repetitions: 5
seed: 42
trial_workers: 4
gen_workers: 1
`

func TestParse_FullDocument(t *testing.T) {
	f, err := config.Parse([]byte(euclideanDoc))
	require.NoError(t, err)

	assert.Equal(t, builder.CoordinateDistance, f.Model)
	assert.Equal(t, 4, f.Dimension)
	require.NotNil(t, f.Threshold)
	assert.Equal(t, builder.Threshold{Scale: 1.1, Exponent: -0.18}, *f.Threshold)
	assert.Equal(t, []int{128, 256, 512}, f.Sizes)
	assert.EqualValues(t, 42, f.Seed)

	cfg, err := f.TrialConfig()
	require.NoError(t, err)
	assert.Equal(t, trial.Config{
		Sizes:        []int{128, 256, 512},
		Repetitions:  5,
		Model:        builder.CoordinateDistance,
		Dimension:    4,
		Threshold:    builder.Euclidean4DDefaults(),
		Seed:         42,
		TrialWorkers: 4,
		GenWorkers:   1,
	}, cfg)
}

func TestParse_DefaultsFilledIn(t *testing.T) {
	f, err := config.Parse([]byte("model: direct\nsizes: [16]\n"))
	require.NoError(t, err)
	assert.Nil(t, f.Threshold)
	assert.Equal(t, builder.DirectDefaults(), f.ResolvedThreshold())

	cfg, err := f.TrialConfig()
	require.NoError(t, err)
	assert.Equal(t, trial.DefaultRepetitions, cfg.Repetitions)
	assert.Equal(t, builder.DirectDefaults(), cfg.Threshold)
}

func TestParse_ModelAliases(t *testing.T) {
	f, err := config.Parse([]byte("model: uniform\nsizes: [4]\n"))
	require.NoError(t, err)
	assert.Equal(t, builder.DirectSample, f.Model)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown key", "model: direct\nsizes: [4]\ncolour: blue\n"},
		{"unknown model", "model: hyperbolic\nsizes: [4]\n"},
		{"missing model", "sizes: [4]\n"},
		{"missing sizes", "model: direct\n"},
		{"zero size", "model: direct\nsizes: [4, 0]\n"},
		{"zero reps", "model: direct\nsizes: [4]\nrepetitions: 0\n"},
		{"negative reps", "model: direct\nsizes: [4]\nrepetitions: -1\n"},
		{"euclidean without dimension", "model: euclidean\nsizes: [4]\n"},
		{"negative scale", "model: direct\nsizes: [4]\nthreshold: {scale: -1, exponent: 0}\n"},
		{"negative workers", "model: direct\nsizes: [4]\ntrial_workers: -2\n"},
		{"not yaml", "model: [direct\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_InfiniteScale(t *testing.T) {
	f, err := config.Parse([]byte("model: direct\nsizes: [4]\nthreshold: {scale: .inf, exponent: 0}\n"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(f.ResolvedThreshold().Scale, 1))
}

func TestDefault(t *testing.T) {
	d := config.Default(builder.DirectSample)
	assert.Equal(t, builder.DirectDefaults(), d.ResolvedThreshold())
	assert.Zero(t, d.Dimension)
	require.NotNil(t, d.Repetitions)
	assert.Equal(t, 5, *d.Repetitions)
	assert.Equal(t, config.DefaultMinSize, d.Sizes[0])
	assert.Equal(t, config.DefaultMaxSize, d.Sizes[len(d.Sizes)-1])
	assert.Len(t, d.Sizes, 12)
	require.NoError(t, d.Validate())

	e := config.Default(builder.CoordinateDistance)
	assert.Equal(t, 4, e.Dimension)
	assert.Equal(t, builder.Euclidean4DDefaults(), e.ResolvedThreshold())
	require.NoError(t, e.Validate())
}

func TestEncode_RoundTrip(t *testing.T) {
	want := config.Default(builder.CoordinateDistance)
	want.Sizes = []int{8, 16}

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	assert.Contains(t, buf.String(), "model: euclidean")

	got, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(euclideanDoc), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, builder.CoordinateDistance, f.Model)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestTrialConfig_ZeroRepetitions: an explicit 0 is rejected, never defaulted.
func TestTrialConfig_ZeroRepetitions(t *testing.T) {
	zero := 0
	f := config.File{Model: builder.DirectSample, Sizes: []int{8}, Repetitions: &zero}
	_, err := f.TrialConfig()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	f.Repetitions = nil
	cfg, err := f.TrialConfig()
	require.NoError(t, err)
	assert.Equal(t, trial.DefaultRepetitions, cfg.Repetitions)
}

func TestTrialConfig_InvalidFile(t *testing.T) {
	f := config.File{Model: builder.DirectSample}
	_, err := f.TrialConfig()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
