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

	// List persistence errors
	ErrNotFound ErrorCode = "NOT_FOUND"
	ErrParse    ErrorCode = "PARSE"
	ErrConvert  ErrorCode = "CONVERT"
	ErrWrite    ErrorCode = "WRITE"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileInvalid  ErrorCode = "PROFILE_INVALID"

	// Ancillary I/O errors (export directory creation and the like)
	ErrGeneric   ErrorCode = "GENERIC"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ModstackError represents a structured error with code and details
type ModstackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModstackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModstackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModstackError) Is(target error) bool {
	var targetErr *ModstackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModstackError with the given code and message
func New(code ErrorCode, message string) *ModstackError {
	return &ModstackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModstackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModstackError {
	return &ModstackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModstackError
func Wrap(err error, code ErrorCode, message string) *ModstackError {
	if err == nil {
		return nil
	}
	return &ModstackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModstackError {
	if err == nil {
		return nil
	}
	return &ModstackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModstackError) WithDetail(key string, value interface{}) *ModstackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode checks if an error has a specific error code
func IsCode(err error, code ErrorCode) bool {
	var merr *ModstackError
	if errors.As(err, &merr) {
		return merr.Code == code
	}
	return false
}

// GetCode returns the error code from an error, or ErrUnknown if not a
// ModstackError
func GetCode(err error) ErrorCode {
	var merr *ModstackError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return ErrUnknown
}

// GetDetails returns the details from an error, or nil if not a
// ModstackError
func GetDetails(err error) map[string]interface{} {
	var merr *ModstackError
	if errors.As(err, &merr) {
		return merr.Details
	}
	return nil
}
