// Package errs defines the error taxonomy shared by services and handlers.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a write carries a missing or wrong
	// admin PIN. No mutation is attempted.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreBusy marks a transient concurrent-write conflict at the store
	// layer. The caller may retry the whole operation.
	ErrStoreBusy = errors.New("store busy")
)

// ValidationError reports a malformed payload, identifying the offending
// field. The operation it aborted performed no partial write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a reference to an entity that does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
