// Package builder provides the edge-weight models used by the generators.
package builder

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/randmst/rng"
)

// Model selects how candidate edge weights are produced.
type Model int

const (
	// DirectSample draws each pair weight independently from U[0,1).
	DirectSample Model = iota + 1

	// CoordinateDistance samples one point per node in [0,1)^d and weighs each
	// pair by the Euclidean distance between its endpoints.
	CoordinateDistance
)

// String returns the canonical model name.
func (m Model) String() string {
	switch m {
	case DirectSample:
		return "direct"
	case CoordinateDistance:
		return "euclidean"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel maps a user-facing name onto a Model.
// Accepted: direct, uniform, 1d / euclidean, coordinate, distance.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "uniform", "1d":
		return DirectSample, nil
	case "euclidean", "coordinate", "distance":
		return CoordinateDistance, nil
	default:
		return 0, fmt.Errorf("ParseModel(%q): %w", s, ErrUnknownModel)
	}
}

// MarshalText implements encoding.TextMarshaler for config and report encoders.
func (m Model) MarshalText() ([]byte, error) {
	if m != DirectSample && m != CoordinateDistance {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(m), ErrUnknownModel)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(b []byte) error {
	v, err := ParseModel(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// WeightFn yields the weight of the candidate pair (x, y).
// Direct-sample weight functions consume one draw per call; coordinate
// weight functions are pure.
type WeightFn func(x, y int) float64

// DirectWeightFn returns a WeightFn that ignores the pair and draws from src.
// Complexity: O(1) per call.
func DirectWeightFn(src rng.Source) WeightFn {
	return func(_, _ int) float64 {
		return src.Float64()
	}
}

// CoordinateWeightFn returns a WeightFn reading rows of a row-major arena of
// dimension dim and returning their Euclidean distance.
// Complexity: O(dim) per call.
func CoordinateWeightFn(coords []float64, dim int) WeightFn {
	return func(x, y int) float64 {
		return EuclideanWeight(coords[x*dim:(x+1)*dim], coords[y*dim:(y+1)*dim])
	}
}

// EuclideanWeight returns the L2 norm of a-b. Panics if the lengths differ.
// In one dimension it is exactly |a[0]-b[0]|.
func EuclideanWeight(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// sampleCoordinates draws n*dim coordinates node by node from src.
// Complexity: O(n·dim).
func sampleCoordinates(src rng.Source, n, dim int) []float64 {
	coords := make([]float64, n*dim)
	for i := range coords {
		coords[i] = src.Float64()
	}

	return coords
}
