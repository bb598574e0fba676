package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Resolution errors
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// DIError represents a structured error with code and details
type DIError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DIError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DIError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DIError carrying the same code.
func (e *DIError) Is(target error) bool {
	var targetErr *DIError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DIError with the given code and message
func New(code ErrorCode, message string) *DIError {
	return &DIError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DIError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DIError {
	return &DIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DIError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DIError {
	if err == nil {
		return nil
	}
	return &DIError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DIError {
	if err == nil {
		return nil
	}
	return &DIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DIError) WithDetail(key string, value interface{}) *DIError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DIError) WithDetails(details map[string]interface{}) *DIError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var diErr *DIError
	if errors.As(err, &diErr) {
		return diErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DIError
func GetErrorCode(err error) ErrorCode {
	var diErr *DIError
	if errors.As(err, &diErr) {
		return diErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DIError
func GetErrorDetails(err error) map[string]interface{} {
	var diErr *DIError
	if errors.As(err, &diErr) {
		return diErr.Details
	}
	return nil
}
