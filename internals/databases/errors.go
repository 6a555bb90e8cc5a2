package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const pgForeignKeyViolation = "23503"

func pgCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation reports whether the store rejected a write because
// it would leave a dangling reference (pgx, lib/pq or SQLite).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == pgForeignKeyViolation {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
