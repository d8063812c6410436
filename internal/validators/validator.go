// SPDX-License-Identifier: Apache-2.0

// Package validators provides request payload validation for the HTTP
// layer.
//
// Validation rules are declared with `validate` struct tags on the request
// models and enforced by go-playground/validator. Failures are reported as
// a [ValidationError] carrying one field-level message per offending field,
// which the transport layer serializes into the 400 response body.
package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mnpat/go-portfolio/models"
)

// RequestValidator validates request payloads against their `validate`
// struct tags. Safe for concurrent use; the underlying validator caches
// struct metadata internally.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] with struct-level
// validation enabled for required fields.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct validates value against its `validate` tags.
//
// Returns nil if the value passes, or a *[ValidationError] listing every
// failed field. Any non-validation failure (e.g. passing a non-struct) is
// returned as-is.
func (v *RequestValidator) ValidateStruct(value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}

	return ve
}

// messageForTag renders a human-readable message for a failed rule.
// The wording mirrors what the portfolio client shows next to form fields.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
