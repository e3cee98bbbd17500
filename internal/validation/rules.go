// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tsp-registry/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
// Like every string rule it accepts "", so pair it with validation.Required.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ServiceURL validates that a string is an absolute http(s) URL with a host.
// Timestamping services are reached over HTTP, so other schemes are rejected.
var ServiceURL = validation.NewStringRuleWithError(
	isServiceURL,
	validation.NewError("validation_service_url", "must be a valid http or https URL"),
)

func isServiceURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}
	return u.Hostname() != "" && u.Opaque == ""
}
