package model

import "fmt"

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors that blocked a write. Callers
// recover it with errors.As to attribute each failure to its field.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// NewValidationError wraps field errors in a ValidationError
func NewValidationError(errors []FieldError) *ValidationError {
	return &ValidationError{Errors: errors}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	detail := "one or more fields failed validation"
	if len(e.Errors) > 0 {
		detail = fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
		if len(e.Errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(e.Errors)-1)
		}
	}
	return detail
}

// HasField reports whether any aggregated error is attributed to field
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}
