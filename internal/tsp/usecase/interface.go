// Package usecase defines business logic interfaces for approved TSP operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// RecordLookup is the read-only view of the repository the validator needs.
type RecordLookup interface {
	// Get retrieves a record by ID. Returns ErrApprovedTspNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error)

	// ExistsByCertificateAndURL reports whether another record already pairs the
	// certificate hash with the URL. The record with excludeID is ignored; pass
	// uuid.Nil when checking a new record.
	ExistsByCertificateAndURL(
		ctx context.Context,
		certificateHash, url string,
		excludeID uuid.UUID,
	) (bool, error)
}

// ApprovedTspRepository defines persistence operations for approved TSP records.
// Implementations must support transaction-aware operations via context propagation.
type ApprovedTspRepository interface {
	RecordLookup

	// Create stores a new record. Returns ErrDuplicateRecord when the
	// certificate and URL pair violates the unique constraint.
	Create(ctx context.Context, tsp *tspDomain.ApprovedTsp) error

	// Update persists the mutable fields of an existing record.
	Update(ctx context.Context, tsp *tspDomain.ApprovedTsp) error

	// Delete removes a record. Returns ErrApprovedTspNotFound if not found.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one filtered, sorted page of records.
	List(ctx context.Context, params tspDomain.ListParams) ([]*tspDomain.ApprovedTsp, error)

	// Count returns the number of records matching search, ignoring pagination.
	Count(ctx context.Context, search string) (int64, error)
}

// ApprovedTspUseCase defines business logic operations for the approved TSP registry.
type ApprovedTspUseCase interface {
	// Create validates and stores a new record. Name, ValidFrom and ValidTo are
	// derived from the certificate.
	//
	// Validation failures are returned as apperrors.FieldErrors, except for
	// certificate parse errors and an overlong certificate subject which abort
	// the save on their own.
	Create(ctx context.Context, input *tspDomain.CreateApprovedTspInput) (*tspDomain.ApprovedTsp, error)

	// Update changes the URL of an existing record. A supplied certificate must
	// be identical to the stored one.
	//
	// Returns ErrApprovedTspNotFound if the record doesn't exist.
	Update(
		ctx context.Context,
		id uuid.UUID,
		input *tspDomain.UpdateApprovedTspInput,
	) (*tspDomain.ApprovedTsp, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one filtered, sorted page of records.
	List(ctx context.Context, params tspDomain.ListParams) ([]*tspDomain.ApprovedTsp, error)

	// Count returns the number of records matching search.
	Count(ctx context.Context, search string) (int64, error)
}
