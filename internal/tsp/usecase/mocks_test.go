package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// mockApprovedTspRepository is a mock implementation of ApprovedTspRepository for testing.
type mockApprovedTspRepository struct {
	mock.Mock
}

func (m *mockApprovedTspRepository) Create(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	args := m.Called(ctx, tsp)
	return args.Error(0)
}

func (m *mockApprovedTspRepository) Update(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	args := m.Called(ctx, tsp)
	return args.Error(0)
}

func (m *mockApprovedTspRepository) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tspDomain.ApprovedTsp), args.Error(1)
}

func (m *mockApprovedTspRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockApprovedTspRepository) ExistsByCertificateAndURL(
	ctx context.Context,
	certificateHash, url string,
	excludeID uuid.UUID,
) (bool, error) {
	args := m.Called(ctx, certificateHash, url, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApprovedTspRepository) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tspDomain.ApprovedTsp), args.Error(1)
}

func (m *mockApprovedTspRepository) Count(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

// mockCertificateFieldExtractor is a mock implementation of CertificateFieldExtractor for testing.
type mockCertificateFieldExtractor struct {
	mock.Mock
}

func (m *mockCertificateFieldExtractor) Extract(certificate []byte) (tspDomain.CertificateFields, error) {
	args := m.Called(certificate)
	return args.Get(0).(tspDomain.CertificateFields), args.Error(1)
}
