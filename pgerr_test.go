package carddb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsPgError_Wrapped(t *testing.T) {
	pe := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "users_email_key"}
	wrapped := fmt.Errorf("failed to create user: %w", pe)

	got, ok := AsPgError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "users_email_key", got.ConstraintName)
}

func TestAsPgError_NotPgError(t *testing.T) {
	_, ok := AsPgError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestIsUniqueViolation(t *testing.T) {
	unique := fmt.Errorf("wrap: %w", &pgconn.PgError{Code: UniqueViolationCode})
	fk := fmt.Errorf("wrap: %w", &pgconn.PgError{Code: ForeignKeyViolationCode})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("nope")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := fmt.Errorf("wrap: %w", &pgconn.PgError{Code: ForeignKeyViolationCode})

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: CheckViolationCode})))
}
