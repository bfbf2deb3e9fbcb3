package motionplan

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/referenceframe"
)

// planManager runs planning attempts until one succeeds, the attempt limit is reached or the context ends.
type planManager struct {
	problem  *Problem
	checker  *ConstraintChecker
	opts     *PlannerOptions
	logger   logging.Logger
	randseed *rand.Rand
}

func newPlanManager(problem *Problem, opts *PlannerOptions, logger logging.Logger) (*planManager, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	checker, err := NewConstraintChecker(problem)
	if err != nil {
		return nil, newInvalidProblemError(err)
	}
	if err := checker.CheckValidity(problem.Start); err != nil {
		return nil, newInvalidProblemError(errors.Wrap(err, "start configuration"))
	}
	if err := checker.CheckValidity(problem.Goal); err != nil {
		return nil, newInvalidProblemError(errors.Wrap(err, "goal configuration"))
	}
	return &planManager{
		problem:  problem,
		checker:  checker,
		opts:     opts,
		logger:   logger,
		randseed: rand.New(rand.NewSource(int64(opts.RandomSeed))), //nolint:gosec
	}, nil
}

func (pm *planManager) planMotion(ctx context.Context) (*Plan, error) {
	ctx, span := trace.StartSpan(ctx, "planMotion")
	defer span.End()

	// set timeout for entire planning process if specified
	var cancel func()
	if pm.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, pm.opts.timeoutDuration())
	}
	if cancel != nil {
		defer cancel()
	}

	if pm.checker.GoalReached(pm.problem.Start, pm.problem.Goal) {
		pm.logger.Info("start is within goal tolerance, no planning needed")
		return &Plan{
			Path:   []referenceframe.Configuration{pm.problem.Start, pm.problem.Goal},
			Length: pm.problem.Start.RootDisplacement(pm.problem.Goal),
			Nodes:  1,
		}, nil
	}

	samples := 0
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attemptLogger := pm.logger.Sublogger("attempt")
		planner, err := newRRTPlanner(
			pm.problem,
			pm.checker,
			pm.opts,
			rand.New(rand.NewSource(pm.randseed.Int63())), //nolint:gosec
			attemptLogger,
		)
		if err != nil {
			return nil, err
		}
		pm.logger.Infof("starting planning attempt %d", attempt)
		goalNode, err := planner.plan(ctx)
		samples += planner.samples
		if err == nil {
			path, length := reconstructPath(planner.tree, goalNode, pm.problem.Start, pm.problem.Goal)
			pm.logger.Infow("found path",
				"attempt", attempt, "samples", planner.samples, "nodes", planner.tree.size(),
				"steps", len(path)-1, "length", length)
			return &Plan{
				Path:     path,
				Length:   length,
				Attempts: attempt,
				Samples:  samples,
				Nodes:    planner.tree.size(),
				Tree:     treeEdges(planner.tree),
			}, nil
		}
		if !errors.Is(err, ErrBudgetExhausted) {
			return nil, err
		}
		pm.logger.Warnw("sample budget exhausted",
			"attempt", attempt, "samples", planner.samples, "failed_samples", planner.failedSamples,
			"nodes", planner.tree.size())
		if pm.opts.MaxAttempts > 0 && attempt >= pm.opts.MaxAttempts {
			return nil, NewAttemptsExhaustedError(attempt)
		}
		pm.logger.Infof("attempt %d failed: %v, restarting with a new tree", attempt, err)
	}
}
