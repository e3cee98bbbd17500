package service

import (
	"crypto/x509"
	"fmt"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// x509FieldExtractor implements CertificateFieldExtractor with crypto/x509.
type x509FieldExtractor struct{}

// NewCertificateFieldExtractor creates an X.509 backed CertificateFieldExtractor.
func NewCertificateFieldExtractor() CertificateFieldExtractor {
	return &x509FieldExtractor{}
}

// Extract parses the certificate and returns its NotBefore, NotAfter and subject.
//
// The subject is rendered as an RFC 4514 distinguished name string
// (e.g. "CN=Test TSP,O=Example"). Times are normalized to UTC. The returned Raw
// field always holds the DER encoding, even when PEM was supplied.
func (e *x509FieldExtractor) Extract(certificate []byte) (tspDomain.CertificateFields, error) {
	der := tspDomain.NormalizeCertificate(certificate)
	if len(der) == 0 {
		return tspDomain.CertificateFields{}, fmt.Errorf("%w: empty certificate", tspDomain.ErrCertificateParse)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return tspDomain.CertificateFields{}, fmt.Errorf("%w: %v", tspDomain.ErrCertificateParse, err)
	}

	notBefore := cert.NotBefore.UTC()
	notAfter := cert.NotAfter.UTC()
	if notAfter.Before(notBefore) {
		return tspDomain.CertificateFields{}, fmt.Errorf(
			"%w: validity ends (%s) before it starts (%s)",
			tspDomain.ErrCertificateParse,
			notAfter,
			notBefore,
		)
	}

	return tspDomain.CertificateFields{
		Raw:         cert.Raw,
		NotBefore:   notBefore,
		NotAfter:    notAfter,
		SubjectName: cert.Subject.String(),
	}, nil
}
