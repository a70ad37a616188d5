package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB wraps the standard library connection pool with the driver name and a
// logger. Both SQL backends (PostgreSQL and SQLite) share this type and the
// same query set.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate brings the schema up to date. PostgreSQL uses the embedded goose
// migrations; the SQLite backend bootstraps its schema at connect time, so
// Migrate is a no-op there.
func (db *DB) Migrate() error {
	if db.driver != "pgx" {
		return nil
	}
	return migrations.Migrate(db.DB)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either backend.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	// mattn/go-sqlite3 reports "UNIQUE constraint failed: <table>.<column>"
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// classifyUserConflict maps a uniqueness violation on the users table to the
// column-specific sentinel. The PostgreSQL constraint name and the SQLite
// error message both carry the column name.
func classifyUserConflict(err error) error {
	msg := err.Error()

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg = pgErr.ConstraintName
	}

	if strings.Contains(msg, "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}
