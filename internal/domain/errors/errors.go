// Package errors defines the application error taxonomy. Every failure a
// screen can see resolves to one of these kinds; nothing here is fatal to
// the process.
package errors

import (
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies a failure for user-facing handling.
type Kind int

const (
	// KindValidation covers input problems caught before any request is sent.
	KindValidation Kind = iota

	// KindNetwork covers timeouts and transport failures; the advice to the
	// user is to retry manually.
	KindNetwork

	// KindServer covers non-2xx responses other than 401, preferring the
	// server-supplied detail message.
	KindServer

	// KindUnauthorized covers 401 responses: the held token was rejected.
	KindUnauthorized

	// KindPermission covers denied device capabilities (location).
	KindPermission
)

// AppError is the interface every typed failure implements.
type AppError interface {
	error
	Kind() Kind
	Message() string // user-friendly message
	Details() string // optional technical detail
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	kind    Kind
	message string
	details string
}

// NewBaseError creates a new base error.
func NewBaseError(kind Kind, message, details string) *BaseError {
	return &BaseError{
		kind:    kind,
		message: message,
		details: details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying additional detail information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:    e.kind,
		message: e.message,
		details: details,
	}
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return pkgerrors.Wrap(e, message)
}

// Predefined error values.
var (
	ErrMissingFields = NewBaseError(
		KindValidation,
		"Please fill in all the details to continue.",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindValidation,
		"Passwords do not match.",
		"",
	)

	ErrNoImage = NewBaseError(
		KindValidation,
		"Please select a leaf image first.",
		"",
	)

	ErrEmptyFeedback = NewBaseError(
		KindValidation,
		"Please write something before submitting.",
		"",
	)

	ErrNetwork = NewBaseError(
		KindNetwork,
		"Could not reach the server. Check your connection and try again.",
		"",
	)

	ErrLocationPermission = NewBaseError(
		KindPermission,
		"Location permission is required to save a diagnosis. Enable it in the configuration.",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		KindPermission,
		"No position is configured. Set location coordinates to tag this diagnosis.",
		"",
	)
)

// ServerError carries a rejected request: the HTTP status and, when the
// backend supplied one, its human-readable detail message.
type ServerError struct {
	Status int
	Detail string
}

// NewServerError builds a ServerError from a response status and detail body.
func NewServerError(status int, detail string) *ServerError {
	return &ServerError{Status: status, Detail: detail}
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return fmt.Sprintf("server rejected the request (%d)", e.Status)
}

func (e *ServerError) Kind() Kind {
	if e.Status == http.StatusUnauthorized {
		return KindUnauthorized
	}

	return KindServer
}

func (e *ServerError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return "Something went wrong on the server. Please try again."
}

func (e *ServerError) Details() string {
	return fmt.Sprintf("status=%d", e.Status)
}

// KindOf extracts the kind from any error in the chain, defaulting to
// KindServer for untyped failures.
func KindOf(err error) Kind {
	var appErr AppError
	if pkgerrors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindServer
}

// UserMessage returns the message a screen should show for err.
func UserMessage(err error) string {
	var appErr AppError
	if pkgerrors.As(err, &appErr) {
		return appErr.Message()
	}

	return "Something went wrong. Please try again."
}

// IsUnauthorized reports whether err means the server rejected the held token.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}
