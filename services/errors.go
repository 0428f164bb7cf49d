package services

import "errors"

// ValidationError reports bad input (malformed dates, missing reasons,
// empty id batches). Nothing was mutated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ConflictError reports a date/slot overlap with an existing request.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Sentinel errors for single-item lifecycle operations.
var (
	// ErrRequestNotFound - no request with the given id exists.
	ErrRequestNotFound = errors.New("request not found")
	// ErrWrongState - the request exists but is not in the source state the
	// transition requires.
	ErrWrongState = errors.New("request is not in the required state")
	// ErrStaffNotFound - the referenced staff member does not exist.
	ErrStaffNotFound = errors.New("staff not found")
)

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflictError reports whether err is a ConflictError.
func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
