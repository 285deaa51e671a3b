package pgutils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// CodeUniqueViolation is the SQLSTATE for a unique constraint violation (class 23).
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const CodeUniqueViolation = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation (23505).
func IsUniqueViolation(err error) bool {
	return hasErrorCode(err, CodeUniqueViolation)
}

// ConstraintName returns the violated constraint when err carries a *pgconn.PgError
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// hasErrorCode reports whether err carries the given SQLSTATE.
// The driver's *pgconn.PgError is authoritative; the message check covers
// errors that were flattened to text on the way up.
func hasErrorCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
