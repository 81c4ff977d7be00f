package types

import (
	"errors"
	"fmt"
)

var (
	ErrNeedNotFound      = errors.New("need not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrVolunteerNotFound = errors.New("volunteer not found")
)

// ValidationError reports a rejected input field. The operation that
// returned it made no partial mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError wraps a storage-layer failure. The durable value under
// Key is unchanged; callers re-read before the next mutation.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
