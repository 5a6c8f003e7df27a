package estimate

import "fmt"

// ValidationError reports a malformed dimension or option value. Calculators
// refuse bad input up front instead of coercing it to zero and emitting
// misleading zero-quantity line items.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func errPositive(field string, got float64) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be greater than zero, got %g", got)}
}

func errNonNegative(field string, got int) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("must not be negative, got %d", got)}
}

// errUnknown rejects a value outside an enumerated field's closed set.
// Unrecognized selections are errors, never silent defaults.
func errUnknown(field string, got string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("unknown value %q", got)}
}
