package extractor

import "errors"

// Common extraction errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrInvalidHeader        = errors.New("invalid header value")
	ErrInvalidFile          = errors.New("invalid file upload")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")

	// ErrNotApplicable signals that an extractor does not apply to the
	// current request and should be skipped by the caller. It is never
	// wrapped in a Rejection. The extractors in this package treat
	// non-applicable requests as no-ops instead; the sentinel exists for
	// user-supplied binders that want handler.Wrap to skip them.
	ErrNotApplicable = errors.New("extractor not applicable to this request")
)
