package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies an AppError for callers that branch on failure class
// rather than on message text.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindForbidden      ErrorKind = "forbidden"
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindInternal       ErrorKind = "internal"
)

// AppError is the single error type crossing layer boundaries. Kind and
// Status drive HTTP rendering; Operational separates expected, user-facing
// failures from faults that must never leak detail to the client.
type AppError struct {
	Kind        ErrorKind
	Message     string
	Status      int
	Operational bool
	Err         error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes two AppErrors comparable by kind, so errors.Is(err, &AppError{Kind: k})
// and the sentinel values below both work with the standard errors package.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Status: http.StatusBadRequest, Operational: true}
}

// NewBadRequest is an alias kept for call sites where the failure is a bad
// request but not strictly a field validation problem (e.g. wrong password).
func NewBadRequest(message string) *AppError {
	return NewValidation(message)
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message, Status: http.StatusUnauthorized, Operational: true}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message, Status: http.StatusForbidden, Operational: true}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Status: http.StatusNotFound, Operational: true}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Status: http.StatusConflict, Operational: true}
}

// NewInternal wraps an unexpected failure. The message shown to callers is
// always generic; cause is preserved for server-side logs only.
func NewInternal(cause error) *AppError {
	return &AppError{
		Kind:        KindInternal,
		Message:     "internal server error",
		Status:      http.StatusInternalServerError,
		Operational: false,
		Err:         cause,
	}
}

// IsKind reports whether err is (or wraps) an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}

// AsAppError extracts the AppError from err, normalizing anything else to a
// non-operational internal error.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return NewInternal(err)
}
