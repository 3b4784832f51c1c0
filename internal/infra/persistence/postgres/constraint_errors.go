package postgres

import (
	"strings"

	"comerciaya/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. GORM translates driver
// errors when TranslateError is enabled; the SQLSTATE fallback covers
// connections opened without it.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, "23514")
}

func hasSQLState(err error, code string) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE "+code)
}
