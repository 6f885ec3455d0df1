package helper

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestFromDBError(t *testing.T) {
	t.Run("missing row is 404", func(t *testing.T) {
		err := FromDBError(gorm.ErrRecordNotFound, "Course not found")
		assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
		assert.Equal(t, "Course not found", err.(*fiber.Error).Message)
	})

	t.Run("foreign key violation is 409", func(t *testing.T) {
		wrapped := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23503"})
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, FromDBError(wrapped, "")))
	})

	t.Run("unique violation is 409", func(t *testing.T) {
		wrapped := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, FromDBError(wrapped, "")))
	})

	t.Run("anything else is 500", func(t *testing.T) {
		assert.Equal(t, fiber.StatusInternalServerError,
			fiberCode(t, FromDBError(fmt.Errorf("connection reset"), "")))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(fmt.Errorf("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}
