package handler

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError collects per-field messages produced while validating
// bound request values (see extractor.Validatable). The error handler and
// JSONError recognize it and render a 422 response with a per-field details
// map. It is based on url.Values to reuse its string slice handling.
type ValidationError url.Values

// Error returns a human-readable summary of the collected failures.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// NewValidationError creates an empty validation error ready for Add calls.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add appends a message for a field. A field can carry several messages.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for a field, or "" when the field is clean.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether a field has any messages.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field has a message. An empty ValidationError
// should not be returned as an error.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
