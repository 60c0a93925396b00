package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// constraintError translates a postgres constraint violation into the
// sentinel mapped for that constraint name; any other error passes through.
func constraintError(err error, byConstraint map[string]error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}
	if pqErr.Code != pqUniqueViolation && pqErr.Code != pqForeignKeyViolation {
		return err
	}
	if mapped, ok := byConstraint[pqErr.Constraint]; ok {
		return mapped
	}
	return err
}
