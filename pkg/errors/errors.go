package errors

import (
	"errors"
	"fmt"
)

// ValidationError is a recoverable, caller-visible error raised when an
// order fails validation. Two validation errors are equal when their
// messages are equal.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// ErrValidation creates a validation error
func ErrValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ErrValidationf creates a validation error from a format string
func ErrValidationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NetworkError represents a low-level connection failure. Host and port are
// optional; zero values mean unknown.
type NetworkError struct {
	Message string
	Code    int
	Host    string
	Port    int
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// NewNetworkError creates a network error
func NewNetworkError(message string, code int, host string, port int) *NetworkError {
	return &NetworkError{
		Message: message,
		Code:    code,
		Host:    host,
		Port:    port,
	}
}

// DataAccessError wraps a failure on the data-access path. The underlying
// cause, if any, is reachable through Unwrap; Error reports only the
// top-level message so the two stay separately displayable.
type DataAccessError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *DataAccessError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// ErrDataAccess creates a data-access error with an optional cause
func ErrDataAccess(message string, cause error) *DataAccessError {
	return &DataAccessError{
		Message: message,
		Err:     cause,
	}
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// AsValidation converts an error to a ValidationError if possible
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// AsDataAccess converts an error to a DataAccessError if possible
func AsDataAccess(err error) (*DataAccessError, bool) {
	var dErr *DataAccessError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}

// AsNetwork converts an error to a NetworkError if possible
func AsNetwork(err error) (*NetworkError, bool) {
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}

// Cause walks exactly one level to the immediate cause of err, or returns
// nil when err carries none.
func Cause(err error) error {
	return errors.Unwrap(err)
}
