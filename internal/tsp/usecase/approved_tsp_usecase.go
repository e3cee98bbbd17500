package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tsp-registry/internal/database"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// approvedTspUseCase implements ApprovedTspUseCase.
type approvedTspUseCase struct {
	txManager database.TxManager
	repo      ApprovedTspRepository
	validator *RecordValidator
	logger    *slog.Logger
}

// Create validates and persists a new approved TSP inside a transaction.
func (a *approvedTspUseCase) Create(
	ctx context.Context,
	input *tspDomain.CreateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	record := &tspDomain.ApprovedTsp{
		ID:          uuid.Must(uuid.NewV7()),
		Certificate: input.Certificate,
		URL:         strings.TrimSpace(input.URL),
	}

	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := a.validator.ValidateForSave(ctx, record, true); err != nil {
			return err
		}

		now := time.Now().UTC()
		record.CreatedAt = now
		record.UpdatedAt = now

		a.logger.InfoContext(ctx, "saving approved tsp", slog.String("record", record.String()))
		return a.repo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Update replaces the URL of an existing record. The certificate is kept as
// stored unless the caller resends it, in which case it must be identical.
func (a *approvedTspUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *tspDomain.UpdateApprovedTspInput,
) (*tspDomain.ApprovedTsp, error) {
	var record tspDomain.ApprovedTsp

	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := a.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		record = *existing
		record.URL = strings.TrimSpace(input.URL)
		if len(input.Certificate) > 0 {
			record.Certificate = input.Certificate
		}

		if err := a.validator.ValidateForSave(ctx, &record, false); err != nil {
			return err
		}

		record.UpdatedAt = time.Now().UTC()

		a.logger.InfoContext(ctx, "saving approved tsp", slog.String("record", record.String()))
		return a.repo.Update(ctx, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Get retrieves a record by ID.
func (a *approvedTspUseCase) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	return a.repo.Get(ctx, id)
}

// Delete removes a record by ID.
func (a *approvedTspUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "deleted approved tsp", slog.String("id", id.String()))
	return nil
}

// List validates params and returns the requested page.
func (a *approvedTspUseCase) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "listing approved tsps",
		slog.String("search", params.Search),
		slog.String("sort_column", params.SortColumn.String()),
		slog.String("sort_direction", params.SortDirection.String()),
		slog.Int("limit", params.Limit),
		slog.Int("offset", params.Offset),
	)
	return a.repo.List(ctx, params)
}

// Count returns the number of records matching search.
func (a *approvedTspUseCase) Count(ctx context.Context, search string) (int64, error) {
	a.logger.DebugContext(ctx, "counting approved tsps", slog.String("search", search))
	return a.repo.Count(ctx, search)
}

// NewApprovedTspUseCase creates a new ApprovedTspUseCase with the provided dependencies.
func NewApprovedTspUseCase(
	txManager database.TxManager,
	repo ApprovedTspRepository,
	validator *RecordValidator,
	logger *slog.Logger,
) ApprovedTspUseCase {
	return &approvedTspUseCase{
		txManager: txManager,
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}
