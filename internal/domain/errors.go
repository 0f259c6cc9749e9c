package domain

import "errors"

var (
	// ErrNotFound means a well-formed lookup key matched no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is the class matched by every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateSlug means the slug uniqueness constraint was violated.
	ErrDuplicateSlug = errors.New("an event with this slug already exists")
	// ErrEventReference means a booking's event reference does not resolve
	// to an existing event.
	ErrEventReference = errors.New("referenced event does not exist")
	// ErrUploadFailed means the media store did not return a usable result.
	ErrUploadFailed = errors.New("image upload failed")
	// ErrConnection means the database connection could not be established.
	ErrConnection = errors.New("database connection failed")
)

// ValidationError is a caller-facing validation failure. Its Reason is safe
// to return to clients verbatim. It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
