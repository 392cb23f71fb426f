package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique-constraint violation.
// gorm's TranslateError covers both drivers we run against; the pgconn
// check catches the raw postgres error when translation is not configured.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
