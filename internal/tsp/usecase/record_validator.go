package usecase

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	apperrors "github.com/allisson/tsp-registry/internal/errors"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
	tspService "github.com/allisson/tsp-registry/internal/tsp/service"
	appValidation "github.com/allisson/tsp-registry/internal/validation"
)

// Field names reported in validation failures.
const (
	FieldCertificate = "certificate"
	FieldURL         = "url"
	FieldName        = "name"
)

// saveCheck carries the state of one ValidateForSave call between rules.
type saveCheck struct {
	record      *tspDomain.ApprovedTsp
	isNewRecord bool
	urlValid    bool
	derived     bool
	fieldErrors apperrors.FieldErrors
}

func (s *saveCheck) reject(field, message string, kind error) {
	s.fieldErrors = append(s.fieldErrors, &apperrors.FieldError{Field: field, Message: message, Err: kind})
}

// saveRule inspects or updates the record. A returned error aborts validation
// immediately; rules that only collect field errors return nil.
type saveRule func(ctx context.Context, s *saveCheck) error

// RecordValidator checks an ApprovedTsp before it is persisted and fills in the
// fields derived from its certificate.
type RecordValidator struct {
	extractor tspService.CertificateFieldExtractor
	lookup    RecordLookup
	maxLength int
	rules     []saveRule
}

// NewRecordValidator creates a RecordValidator. A non-positive maxLength falls
// back to DefaultStringMaxLength.
func NewRecordValidator(
	extractor tspService.CertificateFieldExtractor,
	lookup RecordLookup,
	maxLength int,
) *RecordValidator {
	if maxLength <= 0 {
		maxLength = tspDomain.DefaultStringMaxLength
	}

	v := &RecordValidator{
		extractor: extractor,
		lookup:    lookup,
		maxLength: maxLength,
	}

	// Order matters: later rules depend on the state left by earlier ones.
	v.rules = []saveRule{
		v.checkCertificateUnchanged,
		v.checkURL,
		v.checkCertificatePresent,
		v.deriveCertificateFields,
		v.checkNameLength,
		v.checkUnique,
	}
	return v
}

// ValidateForSave runs every rule against record, mutating it in place with the
// certificate-derived Name, ValidFrom, ValidTo and CertificateHash.
//
// Field-level problems are collected and returned together as
// apperrors.FieldErrors. A changed certificate on an existing record, an
// unparseable certificate, an overlong subject or a lookup failure is returned
// on its own as soon as it is found.
func (v *RecordValidator) ValidateForSave(
	ctx context.Context,
	record *tspDomain.ApprovedTsp,
	isNewRecord bool,
) error {
	record.Certificate = tspDomain.NormalizeCertificate(record.Certificate)

	s := &saveCheck{record: record, isNewRecord: isNewRecord}
	for _, rule := range v.rules {
		if err := rule(ctx, s); err != nil {
			return err
		}
	}
	return s.fieldErrors.ErrOrNil()
}

func (v *RecordValidator) checkCertificateUnchanged(ctx context.Context, s *saveCheck) error {
	if s.isNewRecord {
		return nil
	}

	previous, err := v.lookup.Get(ctx, s.record.ID)
	if err != nil {
		return err
	}
	if !bytes.Equal(previous.Certificate, s.record.Certificate) {
		return &tspDomain.ImmutableFieldError{Field: FieldCertificate}
	}
	return nil
}

func (v *RecordValidator) checkURL(_ context.Context, s *saveCheck) error {
	url := s.record.URL

	if err := validation.Validate(url, validation.Required, appValidation.NotBlank); err != nil {
		s.reject(FieldURL, err.Error(), tspDomain.ErrRequiredFieldMissing)
		return nil
	}

	valid := true
	if err := validation.Validate(url, is.URL, appValidation.ServiceURL); err != nil {
		s.reject(FieldURL, err.Error(), tspDomain.ErrInvalidURL)
		valid = false
	}
	if err := validation.Validate(url, validation.RuneLength(0, v.maxLength)); err != nil {
		s.reject(FieldURL, err.Error(), tspDomain.ErrFieldTooLong)
		valid = false
	}
	s.urlValid = valid
	return nil
}

func (v *RecordValidator) checkCertificatePresent(_ context.Context, s *saveCheck) error {
	if len(s.record.Certificate) == 0 {
		s.reject(FieldCertificate, "cannot be blank", tspDomain.ErrRequiredFieldMissing)
	}
	return nil
}

func (v *RecordValidator) deriveCertificateFields(_ context.Context, s *saveCheck) error {
	if len(s.record.Certificate) == 0 {
		return nil
	}

	fields, err := v.extractor.Extract(s.record.Certificate)
	if err != nil {
		return err
	}
	s.record.ApplyCertificateFields(fields)
	s.derived = true
	return nil
}

func (v *RecordValidator) checkNameLength(_ context.Context, s *saveCheck) error {
	if !s.derived {
		return nil
	}

	if err := validation.Validate(s.record.Name, validation.RuneLength(0, v.maxLength)); err != nil {
		return &tspDomain.FieldTooLongError{Field: FieldName, Max: v.maxLength, Value: s.record.Name}
	}
	return nil
}

func (v *RecordValidator) checkUnique(ctx context.Context, s *saveCheck) error {
	if !s.urlValid || !s.derived {
		return nil
	}

	excludeID := s.record.ID
	if s.isNewRecord {
		excludeID = uuid.Nil
	}

	exists, err := v.lookup.ExistsByCertificateAndURL(ctx, s.record.CertificateHash, s.record.URL, excludeID)
	if err != nil {
		return err
	}
	if exists {
		s.reject(FieldCertificate, "is already registered for this url", tspDomain.ErrDuplicateRecord)
	}
	return nil
}
