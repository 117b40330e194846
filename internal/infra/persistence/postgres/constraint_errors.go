package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes we translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Constraint names declared in migrations/.
const (
	constraintIdentityAccount = "identities_account_id_key"
	constraintAccountName     = "accounts_name_key"
	constraintAccountEmail    = "accounts_email_key"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// violatedConstraint returns the constraint name reported by PostgreSQL, or "" when unknown.
func violatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgCheckViolation
	}

	return false
}
