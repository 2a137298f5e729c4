package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	Internal Kind = iota
	ConnectionFailure
	QueryFailure
	SerializationFailure
	ConfigurationFailure
	NotFound
	Forbidden
	Unauthorized
	BadRequest
)

func (k Kind) String() string {
	switch k {
	case ConnectionFailure:
		return "connection_failure"
	case QueryFailure:
		return "query_failure"
	case SerializationFailure:
		return "serialization_failure"
	case ConfigurationFailure:
		return "configuration_failure"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case Unauthorized:
		return "unauthorized"
	case BadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error 帶有分類的應用程式錯誤
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Unauthorized:
		return http.StatusUnauthorized
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to a caller. Server-side failures
// collapse to a generic message.
func PublicMessage(err error) string {
	var e *Error
	if Status(err) < http.StatusInternalServerError && errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
