package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when the targeted row does not
// exist or is not visible to read queries.
var ErrNotFound = errors.New("record not found")

// ErrorClass groups storage failures for logging and metrics.
type ErrorClass string

const (
	ClassNotFound   ErrorClass = "not_found"
	ClassForeignKey ErrorClass = "foreign_key"
	ClassUnique     ErrorClass = "unique"
	ClassNotNull    ErrorClass = "not_null"
	ClassCanceled   ErrorClass = "canceled"
	ClassOther      ErrorClass = "other"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Classify reports which kind of storage failure err is. It understands
// gorm sentinels as well as raw SQLite and PostgreSQL driver errors.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return ClassNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ClassForeignKey
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ClassUnique
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ClassCanceled
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return ClassForeignKey
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ClassUnique
		case sqlite3.ErrConstraintNotNull:
			return ClassNotNull
		}
		return ClassOther
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ClassForeignKey
		case pgUniqueViolation:
			return ClassUnique
		case pgNotNullViolation:
			return ClassNotNull
		}
	}
	return ClassOther
}
