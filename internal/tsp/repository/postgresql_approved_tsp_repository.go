package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/tsp-registry/internal/database"
	apperrors "github.com/allisson/tsp-registry/internal/errors"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// PostgreSQLApprovedTspRepository implements ApprovedTsp persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLApprovedTspRepository struct {
	db      *sql.DB
	builder *SearchQueryBuilder
}

func isPostgresUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// Create inserts a new ApprovedTsp. A unique violation on (cert_hash, url) is
// reported as ErrDuplicateRecord.
func (p *PostgreSQLApprovedTspRepository) Create(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO approved_tsps (id, certificate, cert_hash, url, name, valid_from, valid_to, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		tsp.ID,
		tsp.Certificate,
		tsp.CertificateHash,
		tsp.URL,
		tsp.Name,
		tsp.ValidFrom,
		tsp.ValidTo,
		tsp.CreatedAt,
		tsp.UpdatedAt,
	)
	if err != nil {
		if isPostgresUniqueViolation(err) {
			return tspDomain.ErrDuplicateRecord
		}
		return apperrors.Wrap(err, "failed to create approved tsp")
	}
	return nil
}

// Update writes the URL, the certificate-derived fields and updated_at. The
// certificate column itself is never rewritten.
func (p *PostgreSQLApprovedTspRepository) Update(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE approved_tsps
			  SET url = $1,
				  name = $2,
				  valid_from = $3,
				  valid_to = $4,
				  updated_at = $5
			  WHERE id = $6`

	_, err := querier.ExecContext(
		ctx,
		query,
		tsp.URL,
		tsp.Name,
		tsp.ValidFrom,
		tsp.ValidTo,
		tsp.UpdatedAt,
		tsp.ID,
	)
	if err != nil {
		if isPostgresUniqueViolation(err) {
			return tspDomain.ErrDuplicateRecord
		}
		return apperrors.Wrap(err, "failed to update approved tsp")
	}
	return nil
}

// Get retrieves an ApprovedTsp by ID.
func (p *PostgreSQLApprovedTspRepository) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + approvedTspsColumns + ` FROM approved_tsps WHERE id = $1`

	tsp, err := scanPostgresApprovedTsp(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tspDomain.ErrApprovedTspNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get approved tsp")
	}
	return tsp, nil
}

// Delete removes an ApprovedTsp by ID.
func (p *PostgreSQLApprovedTspRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM approved_tsps WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete approved tsp")
	}
	return checkDeleted(result)
}

// ExistsByCertificateAndURL reports whether a record other than excludeID
// pairs the certificate hash with the URL.
func (p *PostgreSQLApprovedTspRepository) ExistsByCertificateAndURL(
	ctx context.Context,
	certificateHash, url string,
	excludeID uuid.UUID,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS (
				SELECT 1 FROM approved_tsps WHERE cert_hash = $1 AND url = $2 AND id <> $3
			  )`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, certificateHash, url, excludeID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check approved tsp uniqueness")
	}
	return exists, nil
}

// List returns one filtered, sorted page of records.
func (p *PostgreSQLApprovedTspRepository) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	query, err := p.builder.Build(params)
	if err != nil {
		return nil, err
	}

	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list approved tsps")
	}
	defer func() {
		_ = rows.Close()
	}()

	tsps := make([]*tspDomain.ApprovedTsp, 0)
	for rows.Next() {
		tsp, err := scanPostgresApprovedTsp(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan approved tsp")
		}
		tsps = append(tsps, tsp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate approved tsps")
	}
	return tsps, nil
}

// Count returns the number of records matching search.
func (p *PostgreSQLApprovedTspRepository) Count(ctx context.Context, search string) (int64, error) {
	query := p.builder.Count(search)
	querier := database.GetTx(ctx, p.db)

	var total int64
	if err := querier.QueryRowContext(ctx, query.SQL, query.Args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count approved tsps")
	}
	return total, nil
}

func scanPostgresApprovedTsp(row rowScanner) (*tspDomain.ApprovedTsp, error) {
	var tsp tspDomain.ApprovedTsp
	err := row.Scan(
		&tsp.ID,
		&tsp.Certificate,
		&tsp.CertificateHash,
		&tsp.URL,
		&tsp.Name,
		&tsp.ValidFrom,
		&tsp.ValidTo,
		&tsp.CreatedAt,
		&tsp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	normalizeTimes(&tsp)
	return &tsp, nil
}

// NewPostgreSQLApprovedTspRepository creates a new PostgreSQL ApprovedTsp repository.
func NewPostgreSQLApprovedTspRepository(db *sql.DB) *PostgreSQLApprovedTspRepository {
	return &PostgreSQLApprovedTspRepository{
		db:      db,
		builder: NewSearchQueryBuilder(database.PostgreSQL),
	}
}
