package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
)

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// parseStoredDate converts a stored YYYY-MM-DD column, empty string gives zero time
func parseStoredDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored date: %w", err)
	}
	return t, nil
}
