package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrRateLimited        = errors.New("rate limited")
)

// ConsentRequiredMessage is the user-facing remediation text returned when
// an AI operation is refused by the consent gate.
const ConsentRequiredMessage = "AI processing consent required. Please enable AI features in privacy settings."

// FieldError describes a validation error for a specific field.
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

// ConsentError is returned when an operation is refused because the user has
// not granted current AI-processing consent.
type ConsentError struct {
	Operation string
}

func (e *ConsentError) Error() string { return ConsentRequiredMessage }

func (e *ConsentError) Unwrap() error { return ErrForbidden }

// PreconditionError reports a missing external prerequisite, such as AI
// provider credentials.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

func (e *PreconditionError) Unwrap() error { return ErrFailedPrecondition }

// NewPreconditionError creates a PreconditionError with the given message.
func NewPreconditionError(message string) *PreconditionError {
	return &PreconditionError{Message: message}
}
