package options

import (
	"fmt"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// ValidationError reports a value rejected by a setter or a conversion.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Value != nil {
		return fmt.Sprintf("%s (got %v)", msg, e.Value)
	}
	return msg
}

// Is reports ErrOptionValidation.
func (e *ValidationError) Is(target error) bool {
	return target == errors.ErrOptionValidation
}

func invalid(field string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	}
}
