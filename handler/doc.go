// Package handler provides the type-safe request pipeline that consumes
// the extractors in this module.
//
// A handler is a generic function from a typed request to a Response;
// Wrap turns it into a plain http.HandlerFunc, running the configured
// extractors first:
//
//	type CreateUserRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	func createUser(ctx handler.Context, req CreateUserRequest) handler.Response {
//		user, err := userService.Create(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(user, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/users", handler.Wrap(createUser,
//		handler.WithBinders(extractor.JSON(), extractor.Validate()),
//	))
//
// # Error path
//
// Binding failures, nil responses, and render errors flow through the
// ErrorHandler. The default handler understands extraction rejections
// (rendering a route-configured rejection response when present), HTTP
// errors, and validation errors. NewErrorHandler builds a slog-backed
// variant that also logs every failure with the request id.
//
// # Responses
//
// JSON, Empty, and Redirect responses cover the API surface this module
// needs; anything else can implement the one-method Response interface.
package handler
