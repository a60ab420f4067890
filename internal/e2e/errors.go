package e2e

import (
	"errors"
	"fmt"
)

var (
	ErrElementNotFound   = errors.New("element not found")
	ErrNavigationTimeout = errors.New("navigation timeout")
	ErrAssertionFailure  = errors.New("assertion failure")
)

// StepError records where a scenario stopped. Step is 1-based.
type StepError struct {
	Scenario    string
	Step        int
	Action      StepKind
	Expectation string
	Err         error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %d (%s) expected %s: %v", e.Scenario, e.Step, e.Action, e.Expectation, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
