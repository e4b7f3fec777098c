// Package extractor provides request extractors that can be configured at
// runtime, per route, instead of purely through static types.
//
// An extractor derives a typed value from an incoming request: JSON body,
// query string, form body, path parameters, headers, or multipart files.
// Each extractor is a plain binder function compatible with handler.Wrap:
//
//	type CreateUserRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
//
//	r.Post("/users", handler.Wrap(createUser,
//		handler.WithBinder(extractor.JSON()),
//	))
//
// # Runtime configuration
//
// Every extractor has a config type (JSONConfig, QueryConfig, FormConfig,
// PathConfig, HeaderConfig, FileConfig). A config is attached to a route,
// subtree, or whole router with the Provide middleware and travels in the
// request context; the extractor reads it back out when it runs. Routes
// without a config behave exactly as if the zero-value config were
// provided.
//
//	r.With(extractor.Provide(extractor.JSONConfig{
//		MaxBodyBytes: 1 << 20,
//		OnRejection: func(r *http.Request, rej *extractor.Rejection) extractor.Response {
//			return handler.JSON(map[string]string{"error": rej.Error()},
//				handler.WithJSONStatus(rej.HTTPStatus()))
//		},
//	})).Post("/users", createUserHandler)
//
// Providing the same config type twice on one route fails the request with
// 500: configs can only be provided once per route.
//
// # Rejections
//
// A failed extraction is a *Rejection: it records which source failed, the
// HTTP status the failure maps to, and the underlying cause. The route's
// OnRejection handler (or the request type itself, via RejectionMapper)
// turns the rejection into a custom response; without one, the error path
// writes a plain-text error with the mapped status.
//
// # Composition
//
// Extractors compose: each one only touches the struct tags it owns, so a
// single request type can draw from several sources.
//
//	type UpdateArticleRequest struct {
//		ID      string `path:"id"`
//		Expand  bool   `query:"expand"`
//		Title   string `json:"title"`
//		Body    string `json:"body"`
//	}
//
//	r.Put("/articles/{id}", handler.Wrap(updateArticle,
//		handler.WithBinders(
//			extractor.PathChi(),
//			extractor.Query(),
//			extractor.JSON(),
//			extractor.Validate(),
//		),
//	))
package extractor
