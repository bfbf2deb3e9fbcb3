// Package motionplan is a sampling based motion planner for chains of rigid booms joined end to end.
package motionplan

import (
	"context"

	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/referenceframe"
)

// PlanMotion plans a path for the problem's chain from its start to its goal configuration. A nil opts uses
// NewBasicPlannerOptions. Planning restarts with a fresh tree each time an attempt exhausts its sample budget,
// until it succeeds, opts.MaxAttempts is reached, or ctx is done.
func PlanMotion(ctx context.Context, logger logging.Logger, problem *Problem, opts *PlannerOptions) (*Plan, error) {
	if opts == nil {
		opts = NewBasicPlannerOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pm, err := newPlanManager(problem, opts, logger)
	if err != nil {
		return nil, err
	}
	return pm.planMotion(ctx)
}

// PlanMotionFromExtra is PlanMotion with options given as a map of option names to values.
func PlanMotionFromExtra(
	ctx context.Context,
	logger logging.Logger,
	problem *Problem,
	extra map[string]interface{},
) (*Plan, error) {
	opts, err := NewPlannerOptionsFromExtra(extra)
	if err != nil {
		return nil, err
	}
	return PlanMotion(ctx, logger, problem, opts)
}

// CheckPath verifies that path is a valid solution to problem: it starts at the start, ends at the goal, every
// configuration is valid and every move between consecutive configurations is a valid step.
func CheckPath(problem *Problem, path []referenceframe.Configuration) error {
	if err := problem.Validate(); err != nil {
		return err
	}
	checker, err := NewConstraintChecker(problem)
	if err != nil {
		return err
	}
	return checker.CheckPath(problem.Start, problem.Goal, path)
}
