package usecase

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyError(&pgconn.PgError{Code: "23503"}))
	// Raw sqlite constraint error, as raised by a blocked DELETE.
	assert.True(t, isForeignKeyError(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}))
	assert.True(t, isForeignKeyError(fmt.Errorf("delete user: %w", sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	})))

	assert.False(t, isForeignKeyError(gorm.ErrRecordNotFound))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyError(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505"}))

	assert.False(t, isDuplicateKeyError(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
}
