package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError is an error with an associated HTTP status code. Key is a
// stable machine-readable identifier suitable for client-side handling or
// translation lookup.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Common HTTP errors
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "http.error.bad_request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "http.error.unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "http.error.forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "http.error.not_found")
	ErrConflict            = NewHTTPError(http.StatusConflict, "http.error.conflict")
	ErrUnprocessable       = NewHTTPError(http.StatusUnprocessableEntity, "http.error.unprocessable_entity")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "http.error.too_many_requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "http.error.internal_server_error")
)
