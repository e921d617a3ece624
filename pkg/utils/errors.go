package utils

import (
	"fmt"
	"net/http"
)

// Error codes rendered in the JSON:API error body.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidCode     = "INVALID_CODE"
	CodeInvalidCreds    = "INVALID_CREDENTIALS"
	CodeAccountInactive = "ACCOUNT_INACTIVE"
	CodeTokenUsed       = "TOKEN_USED"
	CodeNotVerified     = "CODE_NOT_VERIFIED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeMethodNotAllow  = "METHOD_NOT_ALLOWED"
	CodeUnsupportedType = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is a business failure that is safe to show to clients.
// Err keeps the underlying cause for server-side logs only.
type AppError struct {
	Status int
	Code   string
	Title  string
	Detail string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCause attaches the underlying error without changing what clients see.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func NewBadRequest(code, detail string) *AppError {
	return &AppError{
		Status: http.StatusBadRequest,
		Code:   code,
		Title:  "Bad Request",
		Detail: detail,
	}
}

func NewNotFound(detail string) *AppError {
	return &AppError{
		Status: http.StatusNotFound,
		Code:   CodeNotFound,
		Title:  "404 Not Found",
		Detail: detail,
	}
}

func NewConflict(detail string) *AppError {
	return &AppError{
		Status: http.StatusConflict,
		Code:   CodeConflict,
		Title:  "Conflict",
		Detail: detail,
	}
}

func NewUnauthorized(detail string) *AppError {
	return &AppError{
		Status: http.StatusUnauthorized,
		Code:   CodeUnauthorized,
		Title:  "Unauthorized",
		Detail: detail,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Status: http.StatusInternalServerError,
		Code:   CodeInternal,
		Title:  "Internal Server Error",
		Detail: "Something went wrong. Please try again later.",
		Err:    err,
	}
}

// WithTitle overrides the default title for the status.
func (e *AppError) WithTitle(title string) *AppError {
	e.Title = title
	return e
}
