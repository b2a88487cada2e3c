package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound maps to HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a unique-constraint violation (23505); the
	// constraint is the single source of truth for uniqueness, there is no
	// check-then-insert.
	ErrDuplicate = errors.New("duplicate")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
