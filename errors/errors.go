package errors

import "fmt"

// ParameterError wraps a validation failure with the parameter that caused it.
type ParameterError struct {
	Field string
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %v", e.Field, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrHorizonTooShort   = fmt.Errorf("planning horizon must cover at least one period")
	ErrNegativeValue     = fmt.Errorf("value must not be negative")
	ErrNotFinite         = fmt.Errorf("value must be a finite number")
	ErrDemandLength      = fmt.Errorf("demand series length must match the planning horizon")
	ErrEmptyScenario     = fmt.Errorf("scenario is empty")
	ErrConflictingGrades = fmt.Errorf("grades conflict with explicit initial_employees/salary values")
	ErrConflictingBudget = fmt.Errorf("auto_budget conflicts with an explicit budget")
	ErrSolverUnavailable = fmt.Errorf("solver unavailable")
)
