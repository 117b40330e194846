package postgres

import (
	"testing"

	domainerrors "chess/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestViolatedConstraint(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintAccountEmail}, "insert")

	assert.Equal(t, constraintAccountEmail, violatedConstraint(err))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))
}

func TestTranslateAccountError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "name collision",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintAccountName},
			want: domainerrors.ErrDuplicateName,
		},
		{
			name: "email collision",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintAccountEmail},
			want: domainerrors.ErrDuplicateEmail,
		},
		{
			name: "name length check",
			err:  &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "accounts_name_length"},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateAccountError(tt.err, "failed to create account"), tt.want)
		})
	}

	t.Run("unknown failure stays a database error", func(t *testing.T) {
		err := translateAccountError(errors.New("disk full"), "failed to create account")

		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(t, errors.As(err, &dbErr))
	})
}
