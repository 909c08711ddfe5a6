package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field to a readable message.
// Field names come from the struct field, so DTOs name their fields
// after the form/json keys they bind.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := fieldName(e)
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "datetime":
				errs[field] = field + " must be a date in YYYY-MM-DD format"
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}
