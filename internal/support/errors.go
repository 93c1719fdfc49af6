package support

import (
	"errors"
	"fmt"
)

// ErrConfigurationInvalid is returned when caller-supplied settings are
// internally inconsistent or outside the range the component can honor
// (e.g. a board smaller than 3x3, a crossover bias outside [0, 1)).
var ErrConfigurationInvalid = errors.New("configuration invalid")

// ErrPreconditionViolated marks an operation invoked on a component in a
// state it does not support. No function in this module returns it at
// present; Population.Evaluate, for one, skips individuals that have not
// been grown instead of failing.
var ErrPreconditionViolated = errors.New("precondition violated")

// ErrInvariantBroken signals that an internal invariant the component
// relies on for correctness no longer holds. Encountering this indicates
// a bug rather than misuse by the caller.
var ErrInvariantBroken = errors.New("invariant broken")

// NewError creates a plain error with a message.
func NewError(msg string) error {
	return fmt.Errorf("%s", msg)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ConfigurationInvalid wraps ErrConfigurationInvalid with context.
func ConfigurationInvalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConfigurationInvalid)
}

// PreconditionViolated wraps ErrPreconditionViolated with context.
func PreconditionViolated(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrPreconditionViolated)
}

// InvariantBroken wraps ErrInvariantBroken with context.
func InvariantBroken(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariantBroken)
}
