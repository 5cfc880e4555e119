package flow

import (
	"errors"
	"fmt"
)

// Errors returned by the simulation core. Match them with errors.Is.
var (
	// ErrInvalidConfiguration is returned at construction when the state,
	// name, derivative and initial-value lengths disagree or a parameter is
	// out of range.
	ErrInvalidConfiguration = errors.New("flow: invalid configuration")

	// ErrInvalidInput is returned by Advance for a non-positive or
	// non-finite duration.
	ErrInvalidInput = errors.New("flow: invalid input")

	// ErrNumericalDivergence is returned by Advance when a derivative
	// produced NaN or Inf. The state is left untouched.
	ErrNumericalDivergence = errors.New("flow: numerical divergence")
)

// DivergenceError records where integration produced a non-finite rate.
type DivergenceError struct {
	Index int     // State variable whose derivative diverged
	Name  string  // Its label
	Time  float64 // Evaluation time
	Value float64 // The offending rate
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("flow: numerical divergence in d(%s)/dt at t=%g: %v", e.Name, e.Time, e.Value)
}

func (e *DivergenceError) Unwrap() error {
	return ErrNumericalDivergence
}

// configErr wraps ErrInvalidConfiguration with a reason.
func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
