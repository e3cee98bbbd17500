// Package mocks provides mock implementations of the approved TSP use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// MockApprovedTspUseCase is a mock implementation of ApprovedTspUseCase.
type MockApprovedTspUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockApprovedTspUseCase) Create(
	ctx context.Context,
	input *tspDomain.CreateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tspDomain.ApprovedTsp), args.Error(1)
}

// Update mocks the Update method.
func (m *MockApprovedTspUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *tspDomain.UpdateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tspDomain.ApprovedTsp), args.Error(1)
}

// Get mocks the Get method.
func (m *MockApprovedTspUseCase) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tspDomain.ApprovedTsp), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockApprovedTspUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockApprovedTspUseCase) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tspDomain.ApprovedTsp), args.Error(1)
}

// Count mocks the Count method.
func (m *MockApprovedTspUseCase) Count(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}
