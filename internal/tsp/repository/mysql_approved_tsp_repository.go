package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/tsp-registry/internal/database"
	apperrors "github.com/allisson/tsp-registry/internal/errors"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLApprovedTspRepository implements ApprovedTsp persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
// The connection must be opened with parseTime=true.
type MySQLApprovedTspRepository struct {
	db      *sql.DB
	builder *SearchQueryBuilder
}

func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// Create inserts a new ApprovedTsp. A duplicate (cert_hash, url) entry is
// reported as ErrDuplicateRecord.
func (m *MySQLApprovedTspRepository) Create(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	querier := database.GetTx(ctx, m.db)

	id, err := tsp.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal approved tsp id")
	}

	query := `INSERT INTO approved_tsps (id, certificate, cert_hash, url, name, valid_from, valid_to, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
		if isMySQLDuplicateEntry(err) {
			return tspDomain.ErrDuplicateRecord
		}
		return apperrors.Wrap(err, "failed to create approved tsp")
	}
	return nil
}

// Update writes the URL, the certificate-derived fields and updated_at.
func (m *MySQLApprovedTspRepository) Update(ctx context.Context, tsp *tspDomain.ApprovedTsp) error {
	querier := database.GetTx(ctx, m.db)

	id, err := tsp.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal approved tsp id")
	}

	query := `UPDATE approved_tsps
			  SET url = ?,
				  name = ?,
				  valid_from = ?,
				  valid_to = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		tsp.URL,
		tsp.Name,
		tsp.ValidFrom,
		tsp.ValidTo,
		tsp.UpdatedAt,
		id,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return tspDomain.ErrDuplicateRecord
		}
		return apperrors.Wrap(err, "failed to update approved tsp")
	}
	return nil
}

// Get retrieves an ApprovedTsp by ID.
func (m *MySQLApprovedTspRepository) Get(ctx context.Context, id uuid.UUID) (*tspDomain.ApprovedTsp, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal approved tsp id")
	}

	query := `SELECT ` + approvedTspsColumns + ` FROM approved_tsps WHERE id = ?`

	tsp, err := scanMySQLApprovedTsp(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tspDomain.ErrApprovedTspNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get approved tsp")
	}
	return tsp, nil
}

// Delete removes an ApprovedTsp by ID.
func (m *MySQLApprovedTspRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal approved tsp id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM approved_tsps WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete approved tsp")
	}
	return checkDeleted(result)
}

// ExistsByCertificateAndURL reports whether a record other than excludeID
// pairs the certificate hash with the URL.
func (m *MySQLApprovedTspRepository) ExistsByCertificateAndURL(
	ctx context.Context,
	certificateHash, url string,
	excludeID uuid.UUID,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := excludeID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal approved tsp id")
	}

	query := `SELECT EXISTS (
				SELECT 1 FROM approved_tsps WHERE cert_hash = ? AND url = ? AND id <> ?
			  )`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, certificateHash, url, idBytes).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check approved tsp uniqueness")
	}
	return exists, nil
}

// List returns one filtered, sorted page of records.
func (m *MySQLApprovedTspRepository) List(
	ctx context.Context,
	params tspDomain.ListParams,
) ([]*tspDomain.ApprovedTsp, error) {
	query, err := m.builder.Build(params)
	if err != nil {
		return nil, err
	}

	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list approved tsps")
	}
	defer func() {
		_ = rows.Close()
	}()

	tsps := make([]*tspDomain.ApprovedTsp, 0)
	for rows.Next() {
		tsp, err := scanMySQLApprovedTsp(rows)
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
func (m *MySQLApprovedTspRepository) Count(ctx context.Context, search string) (int64, error) {
	query := m.builder.Count(search)
	querier := database.GetTx(ctx, m.db)

	var total int64
	if err := querier.QueryRowContext(ctx, query.SQL, query.Args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count approved tsps")
	}
	return total, nil
}

func scanMySQLApprovedTsp(row rowScanner) (*tspDomain.ApprovedTsp, error) {
	var tsp tspDomain.ApprovedTsp
	var idBytes []byte

	err := row.Scan(
		&idBytes,
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

	if err := tsp.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal approved tsp id")
	}
	normalizeTimes(&tsp)
	return &tsp, nil
}

// NewMySQLApprovedTspRepository creates a new MySQL ApprovedTsp repository.
func NewMySQLApprovedTspRepository(db *sql.DB) *MySQLApprovedTspRepository {
	return &MySQLApprovedTspRepository{
		db:      db,
		builder: NewSearchQueryBuilder(database.MySQL),
	}
}
