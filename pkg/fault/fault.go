// Package fault defines the error taxonomy the service layer speaks and the
// controllers translate into HTTP responses. Validation and not-found
// conditions are raised before the store is touched; store failures are
// wrapped so the original query text never leaks to a client.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a uniqueness violation (duplicate email,
	// duplicate product name per creator).
	ErrConflict = errors.New("resource conflict")

	// ErrForbidden signals that the authenticated caller may not perform
	// the operation on this resource.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidCredentials signals a failed login. Deliberately silent on
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotApproved signals a login attempt on an account still waiting in
	// the approval queue, or one an admin rejected.
	ErrNotApproved = errors.New("account not approved")
)

// ValidationError carries field-level messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d fields)", len(e.Fields))
}

// Validation wraps a field → message map into a ValidationError.
func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// Invalid is shorthand for a single-field validation error.
func Invalid(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidation extracts a *ValidationError from err, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

// StoreError wraps an underlying database failure. The operation name is
// safe to log and surface; the wrapped error is for logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError for operation op. Returns nil when err is
// nil so call sites can wrap unconditionally.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStore reports whether err is (or wraps) a StoreError.
func IsStore(err error) bool {
	var s *StoreError
	return errors.As(err, &s)
}
