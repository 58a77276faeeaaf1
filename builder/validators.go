// Package builder provides validation helpers that enforce the Generate contract.
//
// Each function returns a wrapped sentinel when its precondition is violated.
package builder

import "fmt"

// validateGenerate checks, in priority order, every Generate precondition.
// Complexity: O(1).
func validateGenerate(n int, model Model, th Threshold, cfg builderConfig) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodGenerate, n, minVertices, ErrTooFewVertices)
	}
	if err := ValidateModel(model, cfg.dim); err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if err := th.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if cfg.src == nil {
		return fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	return nil
}

// ValidateModel checks that model is known and, for CoordinateDistance, that dim ≥ 1.
func ValidateModel(model Model, dim int) error {
	switch model {
	case DirectSample:
		return nil
	case CoordinateDistance:
		if dim < 1 {
			return fmt.Errorf("model %s: dimension=%d: %w", model, dim, ErrInvalidDimension)
		}
		return nil
	default:
		return fmt.Errorf("model %s: %w", model, ErrUnknownModel)
	}
}
