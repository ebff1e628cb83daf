package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("query", "required")

	if got := err.Error(); got != "validation: query: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", NewValidationError("query", "required"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As(err, *ValidationError) = false")
	}
	if ve.Field != "query" {
		t.Errorf("Field = %q, want %q", ve.Field, "query")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("wrapped validation error must match ErrValidation")
	}
}
