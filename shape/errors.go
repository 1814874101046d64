package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned by Validate when shape parameters cannot
// produce a simple closed contour inside the bounding rectangle.
var ErrInvalidParameters = errors.New("shape: invalid folder parameters")

// ParameterError describes a single violated constraint.
// It unwraps to ErrInvalidParameters.
type ParameterError struct {
	// Field names the offending parameter.
	Field string
	// Value is the value that was supplied.
	Value float64
	// Limit is the bound Value violated.
	Limit float64
	// Reason is a short human-readable description of the constraint.
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %g %s (limit %g)", ErrInvalidParameters, e.Field, e.Value, e.Reason, e.Limit)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameters
}
