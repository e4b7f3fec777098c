package extractor

import (
	"fmt"
	"net/http"
	"strings"
)

// FormConfig configures the form extractor for a route. The zero value
// matches the extractor's defaults.
type FormConfig struct {
	// SkipContentTypeCheck accepts any Content-Type header instead of
	// requiring application/x-www-form-urlencoded.
	SkipContentTypeCheck bool

	// OnRejection converts extraction failures into responses.
	OnRejection RejectionHandler
}

// Form creates a form body extractor for application/x-www-form-urlencoded
// content. Struct fields are selected by `form:"name"` tags with the same
// type support as Query.
//
// A wrong or missing content type is rejected with 415, parse and
// conversion failures with 400.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[FormConfig](r.Context())

		if !cfg.SkipContentTypeCheck {
			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				return reject(r, v, SourceForm, http.StatusUnsupportedMediaType, cfg.OnRejection,
					fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType))
			}

			mediaType := contentType
			if idx := strings.Index(contentType, ";"); idx != -1 {
				mediaType = strings.TrimSpace(contentType[:idx])
			}

			if mediaType != "application/x-www-form-urlencoded" {
				return reject(r, v, SourceForm, http.StatusUnsupportedMediaType, cfg.OnRejection,
					fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType))
			}
		}

		if err := r.ParseForm(); err != nil {
			return reject(r, v, SourceForm, http.StatusBadRequest, cfg.OnRejection,
				fmt.Errorf("%w: %v", ErrInvalidForm, err))
		}

		if err := bindToStruct(v, "form", r.Form); err != nil {
			return reject(r, v, SourceForm, http.StatusBadRequest, cfg.OnRejection,
				fmt.Errorf("%w: %v", ErrInvalidForm, err))
		}
		return nil
	}
}
