package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when a write violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func translateWriteError(err error) error {
	if err != nil && isUniqueViolation(err) {
		return errors.Join(ErrDuplicateKey, err)
	}
	return err
}
