package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors turns gin's binding failure into a field -> message map so
// callers get per-field errors instead of one opaque string. Returns nil when
// the error did not come from field validation (e.g. malformed JSON).
func BindingErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors

	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))

	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())

		switch fieldErr.Tag() {
		case "required":
			fields[field] = "This field is required"
		case "email":
			fields[field] = "Must be a valid email address"
		case "url":
			fields[field] = "Must be a well-formed URL"
		case "min":
			fields[field] = fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
		default:
			fields[field] = "Invalid value"
		}
	}

	return fields
}
