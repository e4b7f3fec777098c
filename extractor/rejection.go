package extractor

import (
	"fmt"
	"net/http"
)

// Source identifies the part of the request an extractor reads from.
type Source string

// Extraction sources
const (
	SourceJSON   Source = "json"
	SourceQuery  Source = "query"
	SourceForm   Source = "form"
	SourcePath   Source = "path"
	SourceHeader Source = "header"
	SourceFile   Source = "file"
)

// Response renders itself to an http.ResponseWriter. It is structurally
// identical to handler.Response so rejection handlers can return any
// response type from the handler package.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// RejectionHandler converts an extraction failure into a response.
// Configured per route via the extractor's config type, e.g.:
//
//	r.With(extractor.Provide(extractor.JSONConfig{
//		OnRejection: func(r *http.Request, rej *extractor.Rejection) extractor.Response {
//			return handler.JSONError(rej)
//		},
//	})).Post("/users", createUser)
type RejectionHandler func(r *http.Request, rej *Rejection) Response

// RejectionMapper customizes rejection handling for a single request type.
// When the bind target implements it, the mapper takes precedence over any
// route-scoped RejectionHandler.
//
//	type CreateUserRequest struct {
//		Email string `json:"email"`
//	}
//
//	func (CreateUserRequest) MapRejection(r *http.Request, rej *extractor.Rejection) extractor.Response {
//		return handler.JSON(map[string]string{"error": rej.Error()},
//			handler.WithJSONStatus(rej.Status))
//	}
type RejectionMapper interface {
	MapRejection(r *http.Request, rej *Rejection) Response
}

// Rejection describes a failed extraction. It wraps the underlying cause
// and carries the HTTP status the failure maps to. When a rejection handler
// is configured for the route (or the target type implements
// RejectionMapper), Response holds the pre-rendered response and the error
// path renders it instead of the default plain-text output.
type Rejection struct {
	Source   Source
	Status   int
	Err      error
	Response Response
}

func (rej *Rejection) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", rej.Source, rej.Err)
}

func (rej *Rejection) Unwrap() error {
	return rej.Err
}

// HTTPStatus reports the status code the rejection maps to, defaulting to
// 400 when unset.
func (rej *Rejection) HTTPStatus() int {
	if rej.Status == 0 {
		return http.StatusBadRequest
	}
	return rej.Status
}

// reject builds a Rejection for the given bind target. The type-scoped
// mapper wins over the route-scoped handler.
func reject(r *http.Request, v any, source Source, status int, onRejection RejectionHandler, err error) error {
	rej := &Rejection{
		Source: source,
		Status: status,
		Err:    err,
	}

	if mapper, ok := v.(RejectionMapper); ok {
		rej.Response = mapper.MapRejection(r, rej)
		return rej
	}
	if onRejection != nil {
		rej.Response = onRejection(r, rej)
	}
	return rej
}
