package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/extractkit/extractor"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithMeta attaches metadata to the response
func WithMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Meta == nil {
			r.body.Meta = make(map[string]any, len(meta))
		}
		maps.Copy(r.body.Meta, meta)
	}
}

// JSON creates a JSON response with status 200 by default.
//
//	return handler.JSON(user)
//	return handler.JSON(user, handler.WithJSONStatus(http.StatusCreated))
func JSON(data any, opts ...JSONOption) Response {
	resp := jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: data},
	}
	for _, opt := range opts {
		opt(&resp)
	}
	return resp
}

// JSONError creates a JSON error response. The status code and error body
// are derived from the error type: validation errors carry field details
// with 422, rejections and HTTP errors carry their own status, anything
// else is a 500.
func JSONError(err error, opts ...JSONOption) Response {
	resp := jsonResponse{
		status: http.StatusInternalServerError,
		body: JSONResponse{
			Error: &ErrorDetail{
				Code:    "internal_error",
				Message: "An error occurred processing your request",
			},
		},
	}

	var validationErr ValidationError
	var rej *extractor.Rejection
	var httpErr HTTPError

	switch {
	case errors.As(err, &validationErr):
		resp.status = http.StatusUnprocessableEntity
		resp.body.Error = &ErrorDetail{
			Code:    "validation_error",
			Message: "Validation failed",
			Details: validationErr,
		}
	case errors.As(err, &rej):
		resp.status = rej.HTTPStatus()
		resp.body.Error = &ErrorDetail{
			Code:    "invalid_request",
			Message: rej.Error(),
		}
	case errors.As(err, &httpErr):
		resp.status = httpErr.Code
		resp.body.Error = &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	for _, opt := range opts {
		opt(&resp)
	}
	return resp
}
