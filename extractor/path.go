package extractor

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
)

// PathConfig configures the path extractor for a route. The zero value
// matches the extractor's defaults.
type PathConfig struct {
	// OnRejection converts extraction failures into responses.
	OnRejection RejectionHandler
}

// ParamFunc looks up a named path parameter for the request. Routers supply
// their own: chi.URLParam fits directly, gorilla/mux needs a small adapter.
type ParamFunc func(r *http.Request, name string) string

// Path creates a path parameter extractor using the provided lookup
// function. Struct fields are selected by `path:"name"` tags.
//
// Example with gorilla/mux:
//
//	muxParam := func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	}
//	handler.Wrap(profile, handler.WithBinders(extractor.Path(muxParam)))
//
// Missing parameters leave the field at its zero value; conversion failures
// are rejected with 400.
func Path(param ParamFunc) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[PathConfig](r.Context())

		if param == nil {
			return reject(r, v, SourcePath, http.StatusInternalServerError, cfg.OnRejection,
				fmt.Errorf("%w: param lookup function is nil", ErrInvalidPath))
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return ErrInvalidTarget
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return ErrInvalidTarget
		}

		rt := rv.Type()

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := param(r, paramName)
			if value == "" {
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return reject(r, v, SourcePath, http.StatusBadRequest, cfg.OnRejection,
					fmt.Errorf("%w: field %s: %v", ErrInvalidPath, fieldType.Name, err))
			}
		}

		return nil
	}
}

// PathChi creates a path parameter extractor backed by chi's URL parameter
// lookup.
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}", handler.Wrap(getUser,
//		handler.WithBinders(extractor.PathChi(), extractor.Query()),
//	))
func PathChi() func(r *http.Request, v any) error {
	return Path(chi.URLParam)
}
