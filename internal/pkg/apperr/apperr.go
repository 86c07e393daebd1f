// Package apperr defines the error kinds engines report: validation and
// conflict rejections map to 400, missing records map to 404. Handlers
// resolve the kind with errors.As and never match on message text.
package apperr

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
)

type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	return e.HTTPStatus
}

// Validation rejects malformed input: bad timestamps, non-chronological
// ranges, missing ids.
func Validation(format string, args ...any) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}

// Conflict rejects an operation that collides with stored state. These are
// business-rule rejections and answer 400, not 409.
func Conflict(format string, args ...any) *Error {
	return &Error{
		Code:       CodeConflict,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound reports an unknown record id.
func NotFound(format string, args ...any) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// Wrap attaches an underlying cause while keeping the kind and message.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Err:        err,
	}
}
