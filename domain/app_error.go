package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies collaborator failures so that callers match on
// the kind instead of the message text.
type ErrorKind string

const (
	ErrorKindAuthRequired ErrorKind = "auth_required"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindUpstream     ErrorKind = "upstream"
	ErrorKindNotFound     ErrorKind = "not_found"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
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

func NewAuthRequiredError(message string) *AppError {
	return &AppError{Kind: ErrorKindAuthRequired, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrorKindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrorKindNotFound, Message: message}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Kind: ErrorKindUpstream, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or ErrorKindUpstream when the
// error did not originate from this taxonomy.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrorKindUpstream
}

// StatusOf maps an error to the HTTP status each exposed endpoint uses.
func StatusOf(err error) int {
	switch KindOf(err) {
	case ErrorKindValidation:
		return http.StatusBadRequest
	case ErrorKindAuthRequired:
		return http.StatusUnauthorized
	case ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the user-facing message for err. Taxonomy errors
// surface their message as-is; anything else is reported generically so
// transport details never leak to the client.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
