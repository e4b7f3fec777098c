package extractor

import (
	"fmt"
	"net/http"
)

// HeaderConfig configures the header extractor for a route. The zero value
// matches the extractor's defaults.
type HeaderConfig struct {
	// OnRejection converts extraction failures into responses.
	OnRejection RejectionHandler
}

// Header creates a request header extractor. Struct fields are selected by
// `header:"Name"` tags; lookups use canonical header names, so
// `header:"x-api-key"` and `header:"X-Api-Key"` are equivalent. Multi-value
// headers bind to slice fields.
//
//	type AuthRequest struct {
//		APIKey    string   `header:"X-Api-Key"`
//		Accepts   []string `header:"Accept"`
//		TraceID   *string  `header:"X-Trace-Id"`
//	}
//
// Conversion failures are rejected with 400.
func Header() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[HeaderConfig](r.Context())

		err := bindToStructFunc(v, "header", func(name string) ([]string, bool) {
			vals, ok := r.Header[http.CanonicalHeaderKey(name)]
			return vals, ok
		})
		if err != nil {
			return reject(r, v, SourceHeader, http.StatusBadRequest, cfg.OnRejection,
				fmt.Errorf("%w: %v", ErrInvalidHeader, err))
		}
		return nil
	}
}
