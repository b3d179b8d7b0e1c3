package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDidNotConverge is matched by every ConvergenceError.
	ErrDidNotConverge = errors.New("schedule did not converge")
)

// ParameterError identifies a single rejected input field.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ConvergenceError reports a schedule that hit its period cap while a
// balance above the currency epsilon was still outstanding.
type ConvergenceError struct {
	Periods          int
	RemainingBalance float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("schedule did not converge after %d periods: remaining balance %.2f",
		e.Periods, e.RemainingBalance)
}

func (e *ConvergenceError) Is(target error) bool {
	return target == ErrDidNotConverge
}
