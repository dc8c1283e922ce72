package postgres

import (
	"strings"

	"cabradar/internal/errors"

	"gorm.io/gorm"
)

// uniqueViolationCode is PostgreSQL's unique_violation SQLSTATE.
const uniqueViolationCode = "23505"

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, uniqueViolationCode) ||
		strings.Contains(errMsg, "duplicate key")
}
