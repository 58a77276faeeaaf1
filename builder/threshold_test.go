package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/randmst/builder"
)

// TestThreshold_Presets pins the reference constants.
func TestThreshold_Presets(t *testing.T) {
	d := builder.DirectDefaults()
	assert.Equal(t, 1.0, d.Scale)
	assert.Equal(t, -0.74, d.Exponent)
	assert.InDelta(t, math.Pow(128, -0.74), d.At(128), 1e-15)

	e := builder.Euclidean4DDefaults()
	assert.Equal(t, 1.1, e.Scale)
	assert.Equal(t, -0.18, e.Exponent)
	assert.InDelta(t, 1.1/math.Pow(1024, 0.18), e.At(1024), 1e-12)

	assert.Equal(t, d, builder.PresetFor(builder.DirectSample, 0))
	assert.Equal(t, e, builder.PresetFor(builder.CoordinateDistance, 4))
	assert.True(t, math.IsInf(builder.PresetFor(builder.CoordinateDistance, 3).At(10), 1))
}

// TestThreshold_Validate covers the structural rules.
func TestThreshold_Validate(t *testing.T) {
	tests := []struct {
		name string
		th   builder.Threshold
		ok   bool
	}{
		{"direct preset", builder.DirectDefaults(), true},
		{"zero scale", builder.Threshold{Scale: 0, Exponent: -1}, true},
		{"no pruning", builder.NoPruning(), true},
		{"negative scale", builder.Threshold{Scale: -0.5, Exponent: 0}, false},
		{"nan scale", builder.Threshold{Scale: math.NaN()}, false},
		{"inf exponent", builder.Threshold{Scale: 1, Exponent: math.Inf(-1)}, false},
		{"nan exponent", builder.Threshold{Scale: 1, Exponent: math.NaN()}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.th.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, builder.ErrInvalidThreshold)
		})
	}
}

// TestThreshold_Keep checks the strict comparison and the extremes.
func TestThreshold_Keep(t *testing.T) {
	th := builder.Threshold{Scale: 0.5, Exponent: 0}
	assert.True(t, th.Keep(0.49, 10))
	assert.False(t, th.Keep(0.5, 10))

	zero := builder.Threshold{Scale: 0, Exponent: 0}
	assert.False(t, zero.Keep(0, 5))

	all := builder.NoPruning()
	assert.True(t, all.Keep(1e300, 262144))
	assert.Equal(t, "0.5·n^0", th.String())
}
