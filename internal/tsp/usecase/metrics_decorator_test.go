package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
	"github.com/allisson/tsp-registry/internal/tsp/usecase"
	usecaseMocks "github.com/allisson/tsp-registry/internal/tsp/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "tsp", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "tsp", operation, mock.AnythingOfType("time.Duration"), status).Return().Once()
}

func TestApprovedTspUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("Create success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		input := &tspDomain.CreateApprovedTspInput{URL: "http://tsp.example.com"}
		output := &tspDomain.ApprovedTsp{ID: id}

		mockNext.On("Create", ctx, input).Return(output, nil).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_create", "success")

		res, err := uc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		input := &tspDomain.CreateApprovedTspInput{}
		mockNext.On("Create", ctx, input).Return(nil, errors.New("error")).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_create", "error")

		res, err := uc.Create(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Update", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		input := &tspDomain.UpdateApprovedTspInput{URL: "http://tsp.example.com"}
		mockNext.On("Update", ctx, id, input).Return(&tspDomain.ApprovedTsp{ID: id}, nil).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_update", "success")

		_, err := uc.Update(ctx, id, input)
		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Get", ctx, id).Return(nil, tspDomain.ErrApprovedTspNotFound).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_get", "rejected")

		_, err := uc.Get(ctx, id)
		assert.ErrorIs(t, err, tspDomain.ErrApprovedTspNotFound)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Delete", ctx, id).Return(nil).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_delete", "success")

		assert.NoError(t, uc.Delete(ctx, id))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("List and Count", func(t *testing.T) {
		mockNext := &usecaseMocks.MockApprovedTspUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewApprovedTspUseCaseWithMetrics(mockNext, mockMetrics)

		params := tspDomain.ListParams{SortColumn: tspDomain.SortByName, SortDirection: tspDomain.Ascending}
		mockNext.On("List", ctx, params).Return([]*tspDomain.ApprovedTsp{}, nil).Once()
		mockNext.On("Count", ctx, "").Return(int64(0), nil).Once()
		expectMetrics(mockMetrics, ctx, "approved_tsp_list", "success")
		expectMetrics(mockMetrics, ctx, "approved_tsp_count", "success")

		_, err := uc.List(ctx, params)
		assert.NoError(t, err)
		_, err = uc.Count(ctx, "")
		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})
}
