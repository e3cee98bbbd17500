// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// FieldError is a validation failure attached to a single input field.
// Err is the domain kind (e.g. a wrapped ErrInvalidInput) and Message is the
// user-facing text displayed next to the field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the domain kind of the failure.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors collects every field-level failure found in one validation pass.
// errors.Is and errors.As see through to each individual FieldError.
type FieldErrors []*FieldError

// Error joins the individual messages, ordered by field name.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Error())
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe))
	for _, e := range fe {
		errs = append(errs, e)
	}
	return errs
}

// Details returns a field -> message map suitable for API responses.
// When a field failed more than once the messages are joined.
func (fe FieldErrors) Details() map[string]string {
	details := make(map[string]string, len(fe))
	for _, e := range fe {
		if existing, ok := details[e.Field]; ok {
			details[e.Field] = existing + "; " + e.Message
			continue
		}
		details[e.Field] = e.Message
	}
	return details
}

// ErrOrNil returns nil for an empty collection so callers can return it directly.
func (fe FieldErrors) ErrOrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
