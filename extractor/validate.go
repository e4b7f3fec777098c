package extractor

import "net/http"

// Validatable is implemented by request types that validate themselves
// after binding. The returned error passes through the error path
// unchanged, so returning a handler.ValidationError yields a structured
// 422 response.
type Validatable interface {
	Validate() error
}

// Validate creates a binder step that runs the target's Validate method
// when it implements Validatable. Place it last in the binder chain so it
// sees the fully bound value:
//
//	handler.Wrap(createUser, handler.WithBinders(
//		extractor.JSON(),
//		extractor.Validate(),
//	))
func Validate() func(r *http.Request, v any) error {
	return func(_ *http.Request, v any) error {
		if validatable, ok := v.(Validatable); ok {
			return validatable.Validate()
		}
		return nil
	}
}
