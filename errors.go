package xform

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEmptyPath indicates the request path is empty.
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrEmptyDocument indicates the request document is empty.
	ErrEmptyDocument = errors.New("data cannot be empty")

	// ErrEmptyValue indicates a required replacement value is empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidEncoding indicates the document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("data is not valid UTF-8")

	// ErrInvalidDocument indicates the document is not valid JSON.
	ErrInvalidDocument = errors.New("data is not valid JSON")

	// ErrPathNotFound indicates the path does not resolve in the document.
	ErrPathNotFound = errors.New("path not found in data")

	// ErrInvalidValue indicates a replacement value is not a valid JSON literal.
	ErrInvalidValue = errors.New("value is not a valid JSON literal")

	// ErrUnsupportedKind indicates the value at the path has the wrong kind
	// for the requested operation.
	ErrUnsupportedKind = errors.New("unsupported value kind")

	// ErrMissingHasher indicates the selected digest algorithm has no hasher.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrHash indicates the hasher failed.
	ErrHash = errors.New("hash failed")

	// ErrWrite indicates the accessor could not write the new value.
	ErrWrite = errors.New("write failed")
)

// TransformError represents a failed transformation.
// It wraps a sentinel error with the operation and path that failed.
type TransformError struct {
	Err       error     // Underlying sentinel error (ErrPathNotFound, etc.)
	Operation Operation // Operation that failed
	Path      string    // Path the operation addressed
	Cause     error     // Detail or original error from the accessor or hasher
}

func (e *TransformError) Error() string {
	msg := fmt.Sprintf("unable to %s data", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" at path '%s'", e.Path)
	}
	msg += ": " + e.Err.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// newTransformError creates a TransformError.
func newTransformError(sentinel error, op Operation, path string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Operation: op,
		Path:      path,
		Cause:     cause,
	}
}

// kindError describes a value of the wrong kind for an operation.
func kindError(op Operation, path string, kind Kind, accepted string) error {
	return newTransformError(ErrUnsupportedKind, op, path,
		fmt.Errorf("%s is not a %s", kind, accepted))
}
