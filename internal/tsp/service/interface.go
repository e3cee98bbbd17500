// Package service provides certificate processing for approved timestamping providers.
package service

import (
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// CertificateFieldExtractor derives record fields from a certificate.
type CertificateFieldExtractor interface {
	// Extract parses DER or PEM certificate bytes and returns the validity window
	// and subject display name. It has no side effects; the same input always
	// yields the same output. Unparseable input fails with ErrCertificateParse.
	Extract(certificate []byte) (tspDomain.CertificateFields, error)
}
