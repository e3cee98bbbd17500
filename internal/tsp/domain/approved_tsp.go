// Package domain defines the approved timestamping service provider (TSP) model.
//
// An approved TSP is identified by its certificate and service URL. The display
// name and validity window are always derived from the certificate and are never
// supplied by callers.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApprovedTsp is a trusted timestamping service provider record.
type ApprovedTsp struct {
	ID              uuid.UUID // Unique identifier (UUIDv7)
	Certificate     []byte    // DER-encoded certificate, write-once
	CertificateHash string    // Hex SHA-256 of Certificate
	URL             string    // Timestamping service endpoint
	Name            string    // Certificate subject, derived
	ValidFrom       time.Time // Certificate NotBefore, derived
	ValidTo         time.Time // Certificate NotAfter, derived
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// String renders the record for log lines. The certificate itself is omitted.
func (t *ApprovedTsp) String() string {
	return fmt.Sprintf(
		"ApprovedTsp(name: '%s', url: '%s', validFrom: '%s', validTo: '%s')",
		t.Name,
		t.URL,
		t.ValidFrom.Format(time.RFC3339),
		t.ValidTo.Format(time.RFC3339),
	)
}

// ApplyCertificateFields stores the certificate and every field derived from it.
func (t *ApprovedTsp) ApplyCertificateFields(fields CertificateFields) {
	t.Certificate = fields.Raw
	t.CertificateHash = CertificateHash(fields.Raw)
	t.Name = fields.SubjectName
	t.ValidFrom = fields.NotBefore
	t.ValidTo = fields.NotAfter
}

// CreateApprovedTspInput contains the parameters for registering a new TSP.
// Derived fields are computed from Certificate and cannot be supplied.
type CreateApprovedTspInput struct {
	Certificate []byte // DER or PEM
	URL         string
}

// UpdateApprovedTspInput contains the parameters for updating an existing TSP.
// Certificate is optional; when present it must match the stored certificate.
type UpdateApprovedTspInput struct {
	Certificate []byte // DER or PEM, optional
	URL         string
}
