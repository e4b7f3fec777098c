package extractor

import (
	"context"
	"fmt"
	"net/http"
)

// configKey keys config values in the request context by their Go type.
// Each instantiation is a distinct type, so configs of different types
// never collide.
type configKey[T any] struct{}

// Provide returns middleware that makes cfg available to extractors running
// downstream of it. The config travels in the request context, so it can be
// attached to a whole router, a subtree, or a single route:
//
//	r := chi.NewRouter()
//	r.With(extractor.Provide(extractor.JSONConfig{MaxBodyBytes: 1 << 20})).
//		Post("/users", createUser)
//
// Providing the same config type twice on one route is a programming error;
// the request fails with 500 so the misconfiguration is caught immediately
// instead of one config silently shadowing the other.
func Provide[T any](cfg T) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Value(configKey[T]{}).(T); ok {
				http.Error(w,
					fmt.Sprintf("extractor config of type %T was already provided; configs can only be provided once per route", cfg),
					http.StatusInternalServerError)
				return
			}
			ctx = context.WithValue(ctx, configKey[T]{}, cfg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithConfig stores cfg in ctx directly, bypassing the middleware. Useful
// in tests and for handlers that build requests by hand.
func WithConfig[T any](ctx context.Context, cfg T) context.Context {
	return context.WithValue(ctx, configKey[T]{}, cfg)
}

// ConfigFromContext retrieves a config of type T previously attached by
// Provide or WithConfig. The second return value reports whether a config
// was present; extractors treat an absent config as the zero value, so
// unconfigured routes behave exactly like routes with a default config.
func ConfigFromContext[T any](ctx context.Context) (T, bool) {
	cfg, ok := ctx.Value(configKey[T]{}).(T)
	return cfg, ok
}
