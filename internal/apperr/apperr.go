package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error for boundary translation.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindPlaceNotFound      Kind = "place_not_found"
	KindRoutingUnavailable Kind = "routing_unavailable"
	KindUnexpected         Kind = "unexpected"
)

// Error is an application error carrying a kind and a short, user-safe message.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the error category.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the short user-facing description without the cause.
func (e *Error) Message() string { return e.message }

// HTTPStatus maps the error kind to its boundary status code.
func (e *Error) HTTPStatus() int {
	switch e.kind {
	case KindValidation, KindPlaceNotFound:
		return http.StatusUnprocessableEntity
	case KindRoutingUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation creates a validation error for malformed or empty input.
func NewValidation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

// NewPlaceNotFound creates an error for a place name that could not be geocoded.
func NewPlaceNotFound(name string, cause error) *Error {
	return &Error{
		kind:    KindPlaceNotFound,
		message: fmt.Sprintf("could not geocode %q, please check the city name", name),
		cause:   cause,
	}
}

// NewRoutingUnavailable creates an error for a routing provider failure.
func NewRoutingUnavailable(message string, cause error) *Error {
	return &Error{kind: KindRoutingUnavailable, message: message, cause: cause}
}

// NewUnexpected wraps an uncategorized failure.
func NewUnexpected(cause error) *Error {
	return &Error{kind: KindUnexpected, message: "unexpected error", cause: cause}
}

// KindOf extracts the kind from any error, defaulting to KindUnexpected.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindUnexpected
}

// As extracts an *Error from the chain, or wraps err as unexpected.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return NewUnexpected(err)
}
