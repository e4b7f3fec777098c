package extractor

import (
	"fmt"
	"net/http"
)

// QueryConfig configures the query extractor for a route. The zero value
// matches the extractor's defaults.
type QueryConfig struct {
	// OnRejection converts extraction failures into responses.
	OnRejection RejectionHandler
}

// Query creates a query string extractor. Struct fields are selected by
// `query:"name"` tags (untagged fields bind by lowercased name, "-" skips).
//
// Supported types:
//   - Basic types: string, ints, uints, floats, bool
//   - Slices of basic types for multi-value parameters (?tags=a&tags=b
//     or ?tags=a,b)
//   - Pointers for optional fields
//
// Example:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`
//		Active   *bool    `query:"active"`
//		Internal string   `query:"-"`
//	}
//
// Conversion failures are rejected with 400.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[QueryConfig](r.Context())

		if err := bindToStruct(v, "query", r.URL.Query()); err != nil {
			return reject(r, v, SourceQuery, http.StatusBadRequest, cfg.OnRejection,
				fmt.Errorf("%w: %v", ErrInvalidQuery, err))
		}
		return nil
	}
}
