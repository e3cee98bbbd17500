package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tsp-registry/internal/metrics"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

const metricsDomain = "tsp"

// approvedTspUseCaseWithMetrics decorates ApprovedTspUseCase with metrics instrumentation.
type approvedTspUseCaseWithMetrics struct {
	next    ApprovedTspUseCase
	metrics metrics.BusinessMetrics
}

// NewApprovedTspUseCaseWithMetrics wraps an ApprovedTspUseCase with metrics recording.
func NewApprovedTspUseCaseWithMetrics(useCase ApprovedTspUseCase, m metrics.BusinessMetrics) ApprovedTspUseCase {
	return &approvedTspUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *approvedTspUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	a.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	a.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for create operations.
func (a *approvedTspUseCaseWithMetrics) Create(
	ctx context.Context,
	input *tspDomain.CreateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	start := time.Now()
	tsp, err := a.next.Create(ctx, input)
	a.record(ctx, "approved_tsp_create", start, err)
	return tsp, err
}

// Update records metrics for update operations.
func (a *approvedTspUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *tspDomain.UpdateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	start := time.Now()
	tsp, err := a.next.Update(ctx, id, input)
	a.record(ctx, "approved_tsp_update", start, err)
	return tsp, err
}

// Get records metrics for retrieval operations.
func (a *approvedTspUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	start := time.Now()
	tsp, err := a.next.Get(ctx, id)
	a.record(ctx, "approved_tsp_get", start, err)
	return tsp, err
}

// Delete records metrics for delete operations.
func (a *approvedTspUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)
	a.record(ctx, "approved_tsp_delete", start, err)
	return err
}

// List records metrics for list operations.
func (a *approvedTspUseCaseWithMetrics) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	start := time.Now()
	tsps, err := a.next.List(ctx, params)
	a.record(ctx, "approved_tsp_list", start, err)
	return tsps, err
}

// Count records metrics for count operations.
func (a *approvedTspUseCaseWithMetrics) Count(ctx context.Context, search string) (int64, error) {
	start := time.Now()
	total, err := a.next.Count(ctx, search)
	a.record(ctx, "approved_tsp_count", start, err)
	return total, err
}
