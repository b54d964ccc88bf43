package store

import (
	"errors"
	"fmt"
)

// ValidationError reports a create/update that failed its input checks: a
// required field was missing, a value was out of range, or a referenced id
// did not resolve on create.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation that targeted an id with no matching
// record. Callers treat it as non-fatal.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IntegrityError reports a write that would leave a dangling reference,
// e.g. an update pointing a reference field at a nonexistent record.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return "integrity: " + e.Msg
}

func integrityf(format string, args ...interface{}) error {
	return &IntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// StoreUnavailableError reports that the underlying database could not be
// reached at all. This is the only class that should surface as a hard
// failure; everything else is a caller problem.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "store unavailable: " + e.Err.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
