package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/randmst/builder"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("known_model", func(fl validator.FieldLevel) bool {
		return builder.ValidateModel(builder.Model(fl.Field().Int()), 1) == nil
	})
	validate.RegisterStructValidation(fileStructLevel, File{})
}

// fileStructLevel checks cross-field rules that tags cannot express.
func fileStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(File)
	if f.Model == builder.CoordinateDistance && f.Dimension < 1 {
		sl.ReportError(f.Dimension, "Dimension", "dimension", "required_for_coordinates", "")
	}
	if f.Threshold != nil {
		if err := f.Threshold.Validate(); err != nil {
			sl.ReportError(*f.Threshold, "Threshold", "threshold", "threshold", "")
		}
	}
}

// Validate checks f against its struct tags and cross-field rules.
func (f File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("Validate: %w: %w", formatValidationError(err), ErrInvalidConfig)
	}

	return nil
}

// formatValidationError converts validator errors to a user-facing message
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failure only.
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must have at least %s entries", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "known_model":
			return fmt.Errorf("%s: unknown model (want direct or euclidean)", field)
		case "required_for_coordinates":
			return fmt.Errorf("%s: must be at least 1 for the euclidean model", field)
		case "threshold":
			return fmt.Errorf("%s: scale must be >= 0 and exponent finite", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
