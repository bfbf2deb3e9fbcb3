package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/asvplan/referenceframe"
	"go.viam.com/asvplan/spatialmath"
	"go.viam.com/asvplan/utils"
)

const (
	// Slack allowed on every geometric check.
	defaultMaxError = 1e-5

	// No joint may move further than this between two consecutive configurations of a path.
	defaultMaxStep = 0.001

	// Minimum enclosed area is pi*(defaultMinAreaRadius*(joints-1))^2.
	defaultMinAreaRadius = 0.007

	// names of constraints.
	boomLengthConstraintName = "boom_length"
	convexityConstraintName  = "convexity"
	areaConstraintName       = "area"
	boundsConstraintName     = "bounds"
	collisionConstraintName  = "collision"
)

// Constraint reports whether a configuration satisfies some condition. It must be a pure function.
type Constraint func(referenceframe.Configuration) bool

// constraintHandler holds named constraints and checks them in the order they were added.
type constraintHandler struct {
	names       []string
	constraints map[string]Constraint
}

// AddConstraint will add or overwrite a constraint function with a given name.
func (c *constraintHandler) AddConstraint(name string, cons Constraint) {
	if c.constraints == nil {
		c.constraints = map[string]Constraint{}
	}
	if _, ok := c.constraints[name]; !ok {
		c.names = append(c.names, name)
	}
	c.constraints[name] = cons
}

// RemoveConstraint will remove the given constraint.
func (c *constraintHandler) RemoveConstraint(name string) {
	if _, ok := c.constraints[name]; !ok {
		return
	}
	delete(c.constraints, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}

// Constraints will list all constraints by name.
func (c *constraintHandler) Constraints() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// CheckConstraints returns true only if every constraint passes. It stops at the first failure.
func (c *constraintHandler) CheckConstraints(q referenceframe.Configuration) bool {
	for _, name := range c.names {
		if !c.constraints[name](q) {
			return false
		}
	}
	return true
}

// CheckValidity runs every constraint and reports each one that fails.
func (c *constraintHandler) CheckValidity(q referenceframe.Configuration) error {
	var errs error
	for _, name := range c.names {
		if !c.constraints[name](q) {
			errs = multierr.Append(errs, errors.Errorf("violates %s constraint", name))
		}
	}
	return errs
}

// ConstraintChecker is the validity oracle for a problem. It decides whether a configuration is admissible,
// whether two configurations are close enough to be consecutive path steps, and whether the goal is reached.
type ConstraintChecker struct {
	constraintHandler
	world         *referenceframe.WorldState
	boomLengths   []float64
	maxError      float64
	maxStep       float64
	goalTolerance float64
	minArea       float64
}

// NewConstraintChecker creates the oracle for the given problem with the default five constraints.
func NewConstraintChecker(problem *Problem) (*ConstraintChecker, error) {
	world, err := referenceframe.NewWorldState(problem.Workspace, problem.Obstacles, defaultMaxError)
	if err != nil {
		return nil, err
	}
	lengths := make([]float64, len(problem.BoomLengths))
	copy(lengths, problem.BoomLengths)
	c := &ConstraintChecker{
		world:         world,
		boomLengths:   lengths,
		maxError:      defaultMaxError,
		maxStep:       defaultMaxStep,
		goalTolerance: problem.GoalTolerance,
		minArea:       math.Pi * utils.Square(defaultMinAreaRadius*float64(len(lengths))),
	}
	c.AddConstraint(boomLengthConstraintName, c.ValidBoomLengths)
	c.AddConstraint(boundsConstraintName, c.InBounds)
	c.AddConstraint(convexityConstraintName, c.IsConvex)
	c.AddConstraint(areaConstraintName, c.HasEnoughArea)
	c.AddConstraint(collisionConstraintName, func(q referenceframe.Configuration) bool {
		return !c.Collides(q)
	})
	return c, nil
}

// World returns the environment the checker tests against.
func (c *ConstraintChecker) World() *referenceframe.WorldState {
	return c.world
}

// MaxStep returns the largest distance any joint may travel between consecutive configurations.
func (c *ConstraintChecker) MaxStep() float64 {
	return c.maxStep
}

// IsValid reports whether q satisfies every constraint.
func (c *ConstraintChecker) IsValid(q referenceframe.Configuration) bool {
	return c.CheckConstraints(q)
}

// ValidBoomLengths checks that every boom has its fixed length.
func (c *ConstraintChecker) ValidBoomLengths(q referenceframe.Configuration) bool {
	if q.NumJoints() != len(c.boomLengths)+1 {
		return false
	}
	for i, l := range c.boomLengths {
		if math.Abs(q.BoomLength(i)-l) > c.maxError {
			return false
		}
	}
	return true
}

// IsConvex checks that the closed polygon through the joints turns the same way at every corner,
// never doubles back and winds at most once.
func (c *ConstraintChecker) IsConvex(q referenceframe.Configuration) bool {
	n := q.NumJoints()
	if n < 3 {
		return true
	}
	pts := q.Joints()
	// walk the closed polygon, revisiting the first boom to close the final corner
	pts = append(pts, pts[0], pts[1])

	requiredSign := 0.
	totalTurned := 0.
	heading := spatialmath.Heading(pts[0], pts[1])
	for i := 2; i < len(pts); i++ {
		next := spatialmath.Heading(pts[i-1], pts[i])
		turn := utils.NormalizeAngle(next - heading)
		if math.Abs(turn) == math.Pi {
			return false
		}
		totalTurned += math.Abs(turn)
		if totalTurned > 3*math.Pi {
			return false
		}
		sign := 0.
		switch {
		case turn < -c.maxError:
			sign = -1
		case turn > c.maxError:
			sign = 1
		}
		if sign*requiredSign < 0 {
			return false
		}
		if sign != 0 {
			requiredSign = sign
		}
		heading = next
	}
	return true
}

// HasEnoughArea checks that the closed polygon through the joints encloses the minimum area.
func (c *ConstraintChecker) HasEnoughArea(q referenceframe.Configuration) bool {
	if q.NumJoints() < 3 {
		return true
	}
	return spatialmath.PolygonArea(q.Joints()) >= c.minArea-c.maxError
}

// InBounds checks that every joint is inside the workspace.
func (c *ConstraintChecker) InBounds(q referenceframe.Configuration) bool {
	return c.world.InBounds(q)
}

// Collides reports whether any boom touches an obstacle.
func (c *ConstraintChecker) Collides(q referenceframe.Configuration) bool {
	return c.world.Collides(q)
}

// StepIsValid reports whether b can directly follow a in a path: no joint moves more than the maximum step.
func (c *ConstraintChecker) StepIsValid(a, b referenceframe.Configuration) bool {
	if a.NumJoints() != b.NumJoints() {
		return false
	}
	return a.MaxJointDistance(b) <= c.maxStep+c.maxError
}

// GoalReached reports whether every joint of q is within the goal tolerance of the matching goal joint.
func (c *ConstraintChecker) GoalReached(q, goal referenceframe.Configuration) bool {
	if q.NumJoints() != goal.NumJoints() {
		return false
	}
	return q.MaxJointDistance(goal) <= c.goalTolerance
}

// CheckPath reports every way path fails to be a solution from start to goal.
func (c *ConstraintChecker) CheckPath(start, goal referenceframe.Configuration, path []referenceframe.Configuration) error {
	if len(path) == 0 {
		return errors.New("path is empty")
	}
	var errs error
	if !path[0].AlmostEqual(start, c.maxError) {
		errs = multierr.Append(errs, errors.New("path does not begin at the start configuration"))
	}
	if !path[len(path)-1].AlmostEqual(goal, c.maxError) {
		errs = multierr.Append(errs, errors.New("path does not end at the goal configuration"))
	}
	for i, q := range path {
		if err := c.CheckValidity(q); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "configuration %d", i))
		}
		if i > 0 && !c.StepIsValid(path[i-1], q) {
			errs = multierr.Append(errs, errors.Errorf("step %d moves a joint further than %g", i, c.maxStep))
		}
	}
	return errs
}
