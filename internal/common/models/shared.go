package models

import (
	"errors"
	"fmt"
)

// Sentinel errors services return; the API layer maps them to HTTP statuses.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError names the offending field so forms can show a useful message
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level validation failure
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
