package validation

import "fmt"

// FieldError reports the first constraint violated by a request payload.
// Field carries the JSON field name so callers can surface it directly.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
