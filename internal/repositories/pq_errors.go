package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// mapPQError translates PostgreSQL constraint violations into the
// repository sentinel errors. Other errors are wrapped as ErrDatabaseError.
func mapPQError(err error, context string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s (constraint: %s)", ErrForeignKeyViolation, pqErr.Message, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, context, err)
}
