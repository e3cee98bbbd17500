package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CertificateOptions controls the self-signed certificates produced by
// GenerateCertificate. Zero values fall back to a one year certificate for
// "CN=Test TSP" starting at 2024-01-01T00:00:00Z.
type CertificateOptions struct {
	Subject   pkix.Name
	NotBefore time.Time
	NotAfter  time.Time
}

// GenerateCertificate creates a self-signed, DER-encoded timestamping certificate.
func GenerateCertificate(t *testing.T, opts CertificateOptions) []byte {
	t.Helper()

	if opts.Subject.String() == "" {
		opts.Subject = pkix.Name{CommonName: "Test TSP"}
	}
	if opts.NotBefore.IsZero() {
		opts.NotBefore = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if opts.NotAfter.IsZero() {
		opts.NotAfter = opts.NotBefore.AddDate(1, 0, 0)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "failed to generate certificate key")

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	require.NoError(t, err, "failed to generate certificate serial")

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      opts.Subject,
		NotBefore:    opts.NotBefore,
		NotAfter:     opts.NotAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageTimeStamping},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "failed to create certificate")
	return der
}

// GenerateCertificateWithCN is a shorthand for a certificate with only a common name.
func GenerateCertificateWithCN(t *testing.T, commonName string) []byte {
	t.Helper()
	return GenerateCertificate(t, CertificateOptions{Subject: pkix.Name{CommonName: commonName}})
}

// EncodePEM wraps DER certificate bytes in a PEM CERTIFICATE block.
func EncodePEM(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
