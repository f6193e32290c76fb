package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnknownLogType = errors.New("unknown log type")
	ErrMissingField   = errors.New("missing required field")
	ErrStorage        = errors.New("storage failure")
)

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

// UnknownLogTypeError is returned when a typed recording references a type
// name that was never registered.
type UnknownLogTypeError struct {
	Name string
}

func (e *UnknownLogTypeError) Error() string {
	return fmt.Sprintf("invalid log type: '%s'", e.Name)
}

func (e *UnknownLogTypeError) Unwrap() []error {
	return []error{ErrUnknownLogType, ErrValidation}
}

// MissingFieldError is returned when, after defaults and supplied values are
// merged, schema attributes are still without a value. Fields is sorted.
type MissingFieldError struct {
	Type   string
	Fields []string
}

// Field returns the first missing attribute.
func (e *MissingFieldError) Field() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

func (e *MissingFieldError) Error() string {
	if len(e.Fields) <= 1 {
		return fmt.Sprintf("missing field '%s' in type '%s'", e.Field(), e.Type)
	}
	return fmt.Sprintf("missing fields '%s' in type '%s'", strings.Join(e.Fields, "', '"), e.Type)
}

func (e *MissingFieldError) Unwrap() []error {
	return []error{ErrMissingField, ErrValidation}
}

// StorageError reports that the store could not durably complete Op.
// It matches both ErrStorage and the underlying cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// NewStorageError wraps err as a StorageError. Nil stays nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
