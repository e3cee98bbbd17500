package domain

import (
	"fmt"

	"github.com/allisson/tsp-registry/internal/errors"
)

// Approved TSP errors.
var (
	// ErrApprovedTspNotFound indicates no record exists for the given ID.
	ErrApprovedTspNotFound = errors.Wrap(errors.ErrNotFound, "approved tsp not found")

	// ErrRequiredFieldMissing indicates a mandatory field was empty.
	ErrRequiredFieldMissing = errors.Wrap(errors.ErrInvalidInput, "required field missing")

	// ErrInvalidURL indicates the service URL is not a valid http(s) URL.
	ErrInvalidURL = errors.Wrap(errors.ErrInvalidInput, "invalid url")

	// ErrImmutableField indicates an attempt to change a write-once field.
	ErrImmutableField = errors.Wrap(errors.ErrInvalidInput, "field cannot be modified")

	// ErrDuplicateRecord indicates the certificate and URL pair is already registered.
	ErrDuplicateRecord = errors.Wrap(errors.ErrConflict, "certificate and url pair already exists")

	// ErrCertificateParse indicates the certificate bytes could not be parsed.
	ErrCertificateParse = errors.Wrap(errors.ErrInvalidInput, "failed to parse certificate")

	// ErrFieldTooLong indicates a string exceeds the configured maximum length.
	ErrFieldTooLong = errors.Wrap(errors.ErrInvalidInput, "field too long")

	// ErrInvalidSortColumn indicates the requested sort column is not whitelisted.
	ErrInvalidSortColumn = errors.Wrap(errors.ErrInvalidInput, "invalid sort column")

	// ErrInvalidSortDirection indicates the sort direction is neither ASC nor DESC.
	ErrInvalidSortDirection = errors.Wrap(errors.ErrInvalidInput, "invalid sort direction")

	// ErrInvalidPagination indicates a negative limit or offset.
	ErrInvalidPagination = errors.Wrap(errors.ErrInvalidInput, "invalid pagination")
)

// ImmutableFieldError reports a write-once field that differs from its stored value.
type ImmutableFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s could not be modified for existing TSP", e.Field)
}

// Unwrap returns ErrImmutableField.
func (e *ImmutableFieldError) Unwrap() error {
	return ErrImmutableField
}

// FieldTooLongError reports a derived value that exceeds the maximum string length.
// It aborts the save on its own instead of joining the collected field errors.
type FieldTooLongError struct {
	Field string
	Max   int
	Value string
}

// Error implements the error interface.
func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf(
		"certificate subject %s '%s' is longer than the allowed maximum of %d characters",
		e.Field,
		e.Value,
		e.Max,
	)
}

// Unwrap returns ErrFieldTooLong.
func (e *FieldTooLongError) Unwrap() error {
	return ErrFieldTooLong
}
