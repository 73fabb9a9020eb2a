package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// FieldError describes a validation error for a specific field.
// An empty Field marks an error that belongs to the form as a whole.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ForField returns the messages recorded for the given field.
func (e *ValidationError) ForField(field string) []string {
	var msgs []string
	for _, fe := range e.Errors {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
