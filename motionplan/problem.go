package motionplan

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/asvplan/referenceframe"
)

// defaultGoalTolerance is how close every joint must be to the goal for it to count as reached.
const defaultGoalTolerance = 0.001

// Problem is a single planning request: move the chain from Start to Goal without violating any constraint.
type Problem struct {
	Start referenceframe.Configuration
	Goal  referenceframe.Configuration

	// BoomLengths fixes the length of every boom for the whole problem.
	BoomLengths []float64

	Workspace     r2.Rect
	GoalTolerance float64
	Obstacles     []*referenceframe.Obstacle
}

// NewProblem creates a problem in the unit square, taking boom lengths from the start configuration.
func NewProblem(start, goal referenceframe.Configuration, obstacles []*referenceframe.Obstacle) *Problem {
	return &Problem{
		Start:         start,
		Goal:          goal,
		BoomLengths:   start.BoomLengths(),
		Workspace:     referenceframe.UnitWorkspace,
		GoalTolerance: defaultGoalTolerance,
		Obstacles:     obstacles,
	}
}

// NumJoints returns the number of joints in the chain being planned for.
func (p *Problem) NumJoints() int {
	return len(p.BoomLengths) + 1
}

// Validate checks that the problem is self-consistent. Every problem found is reported, combined
// with ErrInvalidProblem.
func (p *Problem) Validate() error {
	var errs error
	n := p.Start.NumJoints()
	if n < 2 {
		errs = multierr.Append(errs, errors.Errorf("chain needs at least two joints, start has %d", n))
	}
	if p.Goal.NumJoints() != n {
		errs = multierr.Append(errs, referenceframe.NewIncorrectJointCountError(p.Goal.NumJoints(), n))
	}
	if len(p.BoomLengths) != n-1 {
		errs = multierr.Append(errs, errors.Errorf("expected %d boom lengths, got %d", n-1, len(p.BoomLengths)))
	} else {
		for i, l := range p.BoomLengths {
			if !(l > 0) || math.IsInf(l, 0) {
				errs = multierr.Append(errs, errors.Errorf("boom %d has invalid length %f", i, l))
			}
		}
		errs = multierr.Append(errs, p.checkBoomLengths("start", p.Start))
		if p.Goal.NumJoints() == n {
			errs = multierr.Append(errs, p.checkBoomLengths("goal", p.Goal))
			// the chain cannot flip without passing through a straight pose
			if n >= 3 && chainHandedness(p.Start) != chainHandedness(p.Goal) {
				errs = multierr.Append(errs, errors.Errorf("start turns %s but goal turns %s",
					chainHandedness(p.Start), chainHandedness(p.Goal)))
			}
		}
	}
	if p.Workspace.IsEmpty() || p.Workspace.X.Length() <= 0 || p.Workspace.Y.Length() <= 0 {
		errs = multierr.Append(errs, errors.Errorf("workspace %v has no area", p.Workspace))
	}
	// the final hop onto the goal is a single step
	if !(p.GoalTolerance > 0) || p.GoalTolerance > defaultMaxStep {
		errs = multierr.Append(errs, errors.Errorf(
			"goal tolerance must be in (0, %g], got %f", defaultMaxStep, p.GoalTolerance))
	}
	for i, o := range p.Obstacles {
		if o == nil || o.Rect.IsEmpty() {
			errs = multierr.Append(errs, referenceframe.NewDegenerateObstacleError(i))
		}
	}
	if errs != nil {
		return newInvalidProblemError(errs)
	}
	return nil
}

func (p *Problem) checkBoomLengths(name string, c referenceframe.Configuration) error {
	var errs error
	for i, l := range c.BoomLengths() {
		if math.Abs(l-p.BoomLengths[i]) > defaultMaxError {
			errs = multierr.Append(errs, errors.Errorf("%s boom %d has length %f, expected %f", name, i, l, p.BoomLengths[i]))
		}
	}
	return errs
}

// GapRegions returns the free vertical bands between obstacles that the sampler may seed samples in.
func (p *Problem) GapRegions() []r2.Rect {
	return gapRegions(p.Obstacles, p.Workspace)
}
