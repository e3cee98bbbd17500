package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/pem"
	"time"
)

// pemCertificateType is the PEM block type carrying an X.509 certificate.
const pemCertificateType = "CERTIFICATE"

// CertificateFields holds the values derived from a parsed certificate.
type CertificateFields struct {
	Raw         []byte // DER encoding
	NotBefore   time.Time
	NotAfter    time.Time
	SubjectName string
}

// NormalizeCertificate returns the DER bytes of a PEM-encoded certificate, or
// data unchanged when it is not PEM. No parsing or validation happens here.
func NormalizeCertificate(data []byte) []byte {
	block, _ := pem.Decode(data)
	if block != nil && block.Type == pemCertificateType {
		return block.Bytes
	}
	return data
}

// CertificateHash returns the lowercase hex SHA-256 of the given DER bytes.
func CertificateHash(der []byte) string {
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:])
}
