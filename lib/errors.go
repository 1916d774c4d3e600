package lib

import (
	"errors"
	"strings"
)

// Store errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Order lifecycle errors
var (
	// ErrOrderLocked rejects item-list edits once an order reached "ready".
	ErrOrderLocked = errors.New("order can no longer be edited")
)

// MapStoreError normalizes driver-level SQLite failures onto the sentinel
// errors above. Unknown failures pass through untouched.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrConflict
	case strings.Contains(msg, "no rows in result set"):
		return ErrNotFound
	}
	return err
}
