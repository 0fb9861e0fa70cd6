// Package store persists users and tasks through GORM.
package store

import (
	"errors" // Error inspection

	"gorm.io/gorm" // GORM ORM library
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("record already exists")
)

// translate maps GORM sentinel errors onto store errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
