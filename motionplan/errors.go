package motionplan

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	// ErrSamplingExhausted is returned when rejection sampling runs out of tries without producing a valid
	// configuration. It is retryable: the planner counts the sample as consumed and carries on.
	ErrSamplingExhausted = errors.New("no valid configuration found within the sampling attempt limit")

	// ErrBudgetExhausted is returned by a single planning attempt that used its whole sample budget without
	// reaching the goal. The plan manager discards the tree and starts over.
	ErrBudgetExhausted = errors.New("sample budget exhausted before reaching the goal")

	// ErrNoProgress is returned when an expansion could not produce a single valid step.
	ErrNoProgress = errors.New("expansion made no progress")

	// ErrInvalidProblem is returned before planning begins when the problem can never be solved as given.
	ErrInvalidProblem = errors.New("invalid planning problem")

	// ErrAttemptsExhausted is returned when the configured number of planning attempts all failed.
	ErrAttemptsExhausted = errors.New("motion planner failed to find path within the attempt limit")
)

// newInvalidProblemError attaches the reasons a problem was rejected to ErrInvalidProblem.
func newInvalidProblemError(reasons error) error {
	return multierr.Combine(ErrInvalidProblem, reasons)
}

// NewAttemptsExhaustedError returns an error stating how many attempts were made.
func NewAttemptsExhaustedError(attempts int) error {
	return errors.Wrapf(ErrAttemptsExhausted, "gave up after %d attempts", attempts)
}
