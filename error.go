package studio

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	ELOAD     = "load"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("studio error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ContentLoadError reports a content source that is missing or malformed.
// It is fatal for a build and is never retried.
type ContentLoadError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ContentLoadError) Error() string {
	var appErr *Error
	if errors.As(e.Err, &appErr) {
		return fmt.Sprintf("load %s: %s", e.Source, appErr.Message)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ContentLoadError) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Content load failures always report ELOAD, other non-application
// errors report EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var loadErr *ContentLoadError
	if errors.As(err, &loadErr) {
		return ELOAD
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var loadErr *ContentLoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
