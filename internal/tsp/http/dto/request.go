// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
	customValidation "github.com/allisson/tsp-registry/internal/validation"
)

// CreateApprovedTspRequest contains the parameters for registering an approved TSP.
// Presence and URL checks are left to the use case so that every field failure
// is reported together.
type CreateApprovedTspRequest struct {
	Certificate string `json:"certificate"` // Base64 of DER or PEM bytes
	URL         string `json:"url"`
}

// Validate checks if the create request is well formed.
func (r *CreateApprovedTspRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Certificate, customValidation.Base64),
	)
}

// ToInput decodes the certificate and builds the use case input.
// Call Validate first.
func (r *CreateApprovedTspRequest) ToInput() (*tspDomain.CreateApprovedTspInput, error) {
	certificate, err := decodeOptional(r.Certificate)
	if err != nil {
		return nil, err
	}
	return &tspDomain.CreateApprovedTspInput{Certificate: certificate, URL: r.URL}, nil
}

// UpdateApprovedTspRequest contains the parameters for updating an approved TSP.
// Certificate may be omitted; when sent it must match the stored certificate.
type UpdateApprovedTspRequest struct {
	Certificate string `json:"certificate,omitempty"`
	URL         string `json:"url"`
}

// Validate checks if the update request is well formed.
func (r *UpdateApprovedTspRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Certificate, customValidation.Base64),
	)
}

// ToInput decodes the optional certificate and builds the use case input.
func (r *UpdateApprovedTspRequest) ToInput() (*tspDomain.UpdateApprovedTspInput, error) {
	certificate, err := decodeOptional(r.Certificate)
	if err != nil {
		return nil, err
	}
	return &tspDomain.UpdateApprovedTspInput{Certificate: certificate, URL: r.URL}, nil
}

func decodeOptional(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return customValidation.DecodeBase64(s)
}
