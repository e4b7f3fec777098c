package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSONConfig configures the JSON extractor for a route. Attach it with
// Provide; the zero value matches the extractor's defaults (strict decoding,
// content type required, no body limit).
type JSONConfig struct {
	// MaxBodyBytes limits the request body size. Zero means no limit.
	// Oversized bodies are rejected with 413.
	MaxBodyBytes int64

	// AllowUnknownFields disables strict decoding, accepting JSON objects
	// with fields the target struct does not declare.
	AllowUnknownFields bool

	// SkipContentTypeCheck accepts any (or no) Content-Type header instead
	// of requiring application/json.
	SkipContentTypeCheck bool

	// OnRejection converts extraction failures into responses. When nil,
	// rejections render as plain-text errors with their mapped status.
	OnRejection RejectionHandler
}

// JSON creates a JSON body extractor. It decodes the request body into the
// target struct, honoring the JSONConfig provided for the route (if any).
//
// Decode failures map to the status of the underlying problem: 415 for a
// wrong or missing content type, 400 for malformed syntax or an empty body,
// 413 for an oversized body, and 422 when the body is valid JSON that does
// not fit the target type.
//
// Example:
//
//	r.With(extractor.Provide(extractor.JSONConfig{
//		MaxBodyBytes: 1 << 20,
//		OnRejection:  jsonRejection,
//	})).Post("/users", handler.Wrap(createUser,
//		handler.WithBinder(extractor.JSON()),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[JSONConfig](r.Context())

		if !cfg.SkipContentTypeCheck {
			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				return reject(r, v, SourceJSON, http.StatusUnsupportedMediaType, cfg.OnRejection,
					fmt.Errorf("%w: expected application/json", ErrMissingContentType))
			}

			mediaType := contentType
			if idx := strings.Index(contentType, ";"); idx != -1 {
				mediaType = strings.TrimSpace(contentType[:idx])
			}

			if mediaType != "application/json" {
				return reject(r, v, SourceJSON, http.StatusUnsupportedMediaType, cfg.OnRejection,
					fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType))
			}
		}

		body := r.Body
		if cfg.MaxBodyBytes > 0 {
			body = http.MaxBytesReader(nil, body, cfg.MaxBodyBytes)
		}

		decoder := json.NewDecoder(body)
		if !cfg.AllowUnknownFields {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			return reject(r, v, SourceJSON, jsonErrorStatus(err), cfg.OnRejection, jsonDecodeError(err))
		}

		// Reject trailing content after the JSON value
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return reject(r, v, SourceJSON, http.StatusBadRequest, cfg.OnRejection,
				fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON))
		}

		return nil
	}
}

// jsonErrorStatus maps a decode error to an HTTP status: 413 for an
// oversized body, 400 for syntactically broken input, 422 for well-formed
// JSON that does not fit the target type.
func jsonErrorStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &syntaxErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func jsonDecodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: body exceeds %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
}
