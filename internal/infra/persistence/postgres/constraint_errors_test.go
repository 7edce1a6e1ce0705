package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isCheckConstraintViolation(check))
	assert.False(t, isCheckConstraintViolation(errors.New("plain")))
}
