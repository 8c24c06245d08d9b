package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestValidationError_Error_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{
		{Field: "email", Message: "email is required"},
	})

	errMsg := err.Error()

	if !strings.Contains(errMsg, "email") {
		t.Errorf("error message should contain field name, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "email is required") {
		t.Errorf("error message should contain field message, got: %s", errMsg)
	}
}

func TestValidationError_Error_MultipleFields_SummarizesCount(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "venue", Message: "venue is required"},
		{Field: "mode", Message: "mode is required"},
	})

	errMsg := err.Error()

	if !strings.Contains(errMsg, "title") {
		t.Errorf("error message should lead with the first field, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "2 more errors") {
		t.Errorf("error message should mention count of additional errors, got: %s", errMsg)
	}
}

func TestValidationError_Error_EmptyErrors_ReturnsDefaultMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{})

	if err.Error() != "one or more fields failed validation" {
		t.Errorf("expected default message, got %q", err.Error())
	}
}

// ============================================================================
// errors.As Recovery Tests
// ============================================================================

func TestValidationError_RecoverableWithErrorsAs(t *testing.T) {
	t.Parallel()

	var err error = NewValidationError([]FieldError{
		{Field: "date", Message: "invalid date"},
	})
	wrapped := fmt.Errorf("creating event: %w", err)

	var vErr *ValidationError
	if !errors.As(wrapped, &vErr) {
		t.Fatalf("expected errors.As to recover *ValidationError from %v", wrapped)
	}
	if len(vErr.Errors) != 1 || vErr.Errors[0].Field != "date" {
		t.Errorf("expected date field error, got %v", vErr.Errors)
	}
}

// ============================================================================
// HasField Tests
// ============================================================================

func TestValidationError_HasField(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "tags", Message: "tags must have at least one item"},
	})

	if !err.HasField("title") {
		t.Error("expected HasField(\"title\") to be true")
	}
	if !err.HasField("tags") {
		t.Error("expected HasField(\"tags\") to be true")
	}
	if err.HasField("date") {
		t.Error("expected HasField(\"date\") to be false")
	}
}
