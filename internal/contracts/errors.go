package contracts

import "fmt"

// ValidationError reports malformed or out-of-range input. Callers can
// distinguish it from computation failures with errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ComputationError reports structurally valid input on which a
// computation cannot proceed, such as a DCF where the discount rate does
// not exceed the growth rate.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("computation: %s", e.Reason)
	}
	return fmt.Sprintf("computation: %s: %s", e.Op, e.Reason)
}
