package repository

import (
	"database/sql"

	apperrors "github.com/allisson/tsp-registry/internal/errors"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func normalizeTimes(tsp *tspDomain.ApprovedTsp) {
	tsp.ValidFrom = tsp.ValidFrom.UTC()
	tsp.ValidTo = tsp.ValidTo.UTC()
	tsp.CreatedAt = tsp.CreatedAt.UTC()
	tsp.UpdatedAt = tsp.UpdatedAt.UTC()
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return tspDomain.ErrApprovedTspNotFound
	}
	return nil
}
