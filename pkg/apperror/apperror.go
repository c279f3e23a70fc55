package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidState  = "INVALID_STATE"
	CodeInternalError = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string // e.g. INVALID_INPUT
	Message    string // safe to show to the caller
	HTTPStatus int
	Err        error // wrapped cause, optional
	Details    any   // per-field validation failures, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so errors.Is(err, apperror.ErrNotFound) works for any
// not-found error regardless of its message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details any) *AppError {
	out := *e
	out.Details = details
	return &out
}

func Validation(format string, args ...any) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func NotFound(format string, args ...any) *AppError {
	return New(CodeNotFound, fmt.Sprintf(format, args...), http.StatusNotFound)
}

func Forbidden(format string, args ...any) *AppError {
	return New(CodeForbidden, fmt.Sprintf(format, args...), http.StatusForbidden)
}

func InvalidState(format string, args ...any) *AppError {
	return New(CodeInvalidState, fmt.Sprintf(format, args...), http.StatusConflict)
}

func Internal(err error) *AppError {
	return Wrap(err, CodeInternalError, "an unexpected error occurred", http.StatusInternalServerError)
}

var (
	ErrInvalidInput = New(CodeInvalidInput, "the provided input is invalid", http.StatusBadRequest)
	ErrUnauthorized = New(CodeUnauthorized, "authentication is required", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "you do not have permission to access this resource", http.StatusForbidden)
	ErrNotFound     = New(CodeNotFound, "resource not found", http.StatusNotFound)
	ErrInvalidState = New(CodeInvalidState, "invalid state transition", http.StatusConflict)
)

// From returns err as an *AppError, treating anything unknown as internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
