package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// Коды Postgres, после которых всю операцию можно повторить с чистого состояния
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
)

// classify wraps a store failure as domain.ErrConflict when it is transient,
// otherwise as domain.ErrPersistence.
func classify(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeForeignKeyViolation, codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrConflict, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
