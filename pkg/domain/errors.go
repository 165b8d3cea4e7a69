package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrResetForbidden  = errors.New("usage reset is disabled outside the development environment")
	ErrInvalidFeature  = errors.New("unknown meterable feature")
	ErrInvalidZodiac   = errors.New("unknown zodiac sign")
	ErrUnknownProvider = errors.New("unknown completion provider")
	ErrEmptyDreamText  = errors.New("dream content must not be empty")
	ErrQuotaExceeded   = errors.New("monthly quota exhausted for feature")
)

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// StorageError wraps persistence failures so callers can tell "the quota
// check failed" apart from "the quota is exceeded" and fail closed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsStorageError(err error) bool {
	if err == nil {
		return false
	}
	var storageError *StorageError
	return errors.As(err, &storageError)
}
