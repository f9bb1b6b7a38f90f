package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidURL        = errors.New("invalid url")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("not found")
	ErrStorageFailure    = errors.New("storage failure")
	ErrInvalidDate       = errors.New("invalid date")
)

// ValidationError describes rejected client input
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", err.Field, err.Reason)
}

// Is reports ErrValidation as a match
func (err *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
