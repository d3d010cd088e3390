package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorKind represents the category of a transport-level error.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindNotFound       ErrorKind = "not_found"
	KindServerError    ErrorKind = "server_error"
)

// Error is a structured error that an adapter can translate into a clean
// error response when no frame has been sent yet.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ErrorBody wraps an Error for JSON serialization as the top-level error
// response body.
type ErrorBody struct {
	Error *Error `json:"error"`
}

// NewInvalidRequestError creates an Error for malformed or rejected requests.
func NewInvalidRequestError(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// NewNotFoundError creates an Error for content that cannot be found.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewServerError creates an Error for internal failures.
func NewServerError(message string) *Error {
	return &Error{Kind: KindServerError, Message: message}
}

// HTTPStatusFromError maps an error kind to the corresponding HTTP status
// code.
func HTTPStatusFromError(err *Error) int {
	switch err.Kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes a JSON error response body for err, deriving the HTTP
// status code from its kind. Only valid while no frame has been sent on
// the underlying connection.
func WriteError(w http.ResponseWriter, err *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatusFromError(err))
	json.NewEncoder(w).Encode(ErrorBody{Error: err})
}
