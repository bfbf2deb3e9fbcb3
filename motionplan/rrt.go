package motionplan

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/referenceframe"
)

// plannerState is a state of a single planning attempt.
type plannerState int

const (
	stateSampling plannerState = iota
	stateNearestLookup
	stateExpanding
	stateGoalReached
	stateBudgetExhausted
	stateContinue
)

func (s plannerState) String() string {
	switch s {
	case stateSampling:
		return "sampling"
	case stateNearestLookup:
		return "nearest_lookup"
	case stateExpanding:
		return "expanding"
	case stateGoalReached:
		return "goal_reached"
	case stateBudgetExhausted:
		return "budget_exhausted"
	case stateContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// rrtPlanner is a single planning attempt. It owns its tree, index, sample counter and random source; a restart
// builds a new rrtPlanner rather than reusing one.
type rrtPlanner struct {
	problem *Problem
	opts    *PlannerOptions
	checker *ConstraintChecker
	sampler *sampler
	local   *localPlanner
	tree    *rrtTree
	index   nearestNeighborIndex
	samples int
	// samples for which no valid configuration was found
	failedSamples int
	logger        logging.Logger
}

func newRRTPlanner(
	problem *Problem,
	checker *ConstraintChecker,
	opts *PlannerOptions,
	randseed *rand.Rand,
	logger logging.Logger,
) (*rrtPlanner, error) {
	tree := newRRTTree(problem.Start)
	index, err := newNearestNeighborIndex(opts.NearestNeighbor, tree, opts.JointWeights)
	if err != nil {
		return nil, err
	}
	index.insert(rootID)
	return &rrtPlanner{
		problem: problem,
		opts:    opts,
		checker: checker,
		sampler: newSampler(problem, checker, opts, randseed),
		local:   newLocalPlanner(problem, checker, opts),
		tree:    tree,
		index:   index,
		logger:  logger,
	}, nil
}

// plan grows the tree until a node reaches the goal, returning that node. It returns ErrBudgetExhausted once the
// sample budget is used up.
func (mp *rrtPlanner) plan(ctx context.Context) (nodeID, error) {
	ctx, span := trace.StartSpan(ctx, "rrtPlan")
	defer span.End()

	for {
		if err := ctx.Err(); err != nil {
			return noParent, err
		}
		id, state, err := mp.iterate()
		switch state {
		case stateGoalReached:
			mp.logger.CDebugf(ctx, "goal reached after %d samples with %d nodes", mp.samples, mp.tree.size())
			return id, nil
		case stateBudgetExhausted:
			return noParent, errors.Wrapf(ErrBudgetExhausted, "%d samples, %d nodes", mp.samples, mp.tree.size())
		case stateSampling, stateNearestLookup, stateExpanding, stateContinue:
		}
		if err != nil && !errors.Is(err, ErrSamplingExhausted) && !errors.Is(err, ErrNoProgress) {
			return noParent, err
		}
	}
}

// iterate runs one pass of sample, nearest lookup and expansion. Every pass ends in stateContinue, which hands back
// stateGoalReached, stateBudgetExhausted or stateContinue to the caller.
func (mp *rrtPlanner) iterate() (nodeID, plannerState, error) {
	state := stateSampling
	var (
		target  referenceframe.Configuration
		kind    sampleKind
		nearest nodeID
		id      = noParent
		reached bool
		err     error
	)
	for {
		switch state {
		case stateSampling:
			target, kind, err = mp.sampler.sample()
			mp.samples++
			if err != nil {
				mp.failedSamples++
				mp.logger.Debugw("sampling failed", "kind", kind, "sample", mp.samples, "error", err)
				state = stateContinue
				continue
			}
			state = stateNearestLookup
		case stateNearestLookup:
			nearest = mp.index.nearest(target)
			if nearest == noParent {
				return noParent, stateContinue, errors.New("nearest neighbor lookup on an empty index")
			}
			state = stateExpanding
		case stateExpanding:
			var ext *extension
			ext, err = mp.local.extend(mp.tree.get(nearest).q, target)
			if err != nil {
				state = stateContinue
				continue
			}
			id, err = mp.tree.add(nearest, ext)
			if err != nil {
				return noParent, stateContinue, err
			}
			mp.index.insert(id)
			reached = ext.goal
			state = stateContinue
		case stateContinue:
			switch {
			case reached:
				state = stateGoalReached
			case mp.samples >= mp.opts.SampleBudget:
				state = stateBudgetExhausted
			default:
				return id, stateContinue, err
			}
		case stateGoalReached:
			return id, state, nil
		case stateBudgetExhausted:
			return noParent, state, err
		}
	}
}
