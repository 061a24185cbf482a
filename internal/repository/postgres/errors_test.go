package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// pgUniqueErr mimics the driver error Postgres raises on unique constraint
// failures. Shared by the repository tests.
var pgUniqueErr = pgconn.PgError{Code: uniqueViolation, Message: "duplicate key value violates unique constraint"}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgUniqueErr))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))
}
