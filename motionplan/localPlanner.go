package motionplan

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/asvplan/referenceframe"
	"go.viam.com/asvplan/spatialmath"
	"go.viam.com/asvplan/utils"
)

// handedness is the direction the chain turns at its joints.
type handedness int

const (
	clockwise        handedness = 1
	counterClockwise handedness = -1
)

// sign is the factor applied to interior angles when rebuilding a chain from its root.
func (h handedness) sign() float64 {
	return float64(h)
}

func (h handedness) String() string {
	if h == counterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// chainHandedness returns the direction of the first joint of q that is not straight. A chain that is straight
// everywhere is treated as clockwise.
func chainHandedness(q referenceframe.Configuration) handedness {
	for i := 0; i+2 < q.NumJoints(); i++ {
		turn := q.Turn(i)
		if turn < 0 {
			return clockwise
		}
		if turn > 0 {
			return counterClockwise
		}
	}
	return clockwise
}

// extension is the outcome of growing the tree from one configuration towards another.
type extension struct {
	// validated steps in order; the last one becomes the new node
	steps      []referenceframe.Configuration
	edgeLength float64
	goal       bool
}

// localPlanner moves the chain from one configuration towards another in small steps: the root translates in a
// straight line while the heading of the first boom and the interior angle at every joint change linearly.
type localPlanner struct {
	checker     *ConstraintChecker
	boomLengths []float64
	handedness  handedness
	microStep   float64
	goal        referenceframe.Configuration
}

func newLocalPlanner(problem *Problem, checker *ConstraintChecker, opts *PlannerOptions) *localPlanner {
	return &localPlanner{
		checker:     checker,
		boomLengths: problem.BoomLengths,
		handedness:  chainHandedness(problem.Start),
		microStep:   opts.MicroStep,
		goal:        problem.Goal,
	}
}

// extend steps from `from` towards `target`, validating every step. It stops at the first invalid step, on reaching
// the goal, or on reaching the target. ErrNoProgress is returned if no step could be kept.
func (lp *localPlanner) extend(from, target referenceframe.Configuration) (*extension, error) {
	if from.Equal(target) {
		return nil, ErrNoProgress
	}
	k := int(math.Ceil(from.MaxJointDistance(target) / lp.microStep))
	k = utils.MaxInt(k, 1)

	root := from.Joint(0)
	dRoot := target.Joint(0).Sub(root).Mul(1 / float64(k))
	heading := from.Heading()
	dHeading := utils.NormalizeAngle(target.Heading()-heading) / float64(k)

	interior := from.NumJoints() - 2
	angles := make([]float64, interior)
	dAngles := make([]float64, interior)
	for i := range angles {
		angles[i] = from.InteriorAngle(i + 1)
		dAngles[i] = (target.InteriorAngle(i+1) - angles[i]) / float64(k)
	}

	ext := &extension{}
	prev := from
	current := make([]float64, interior)
	for step := 1; step <= k; step++ {
		s := float64(step)
		for i := range current {
			current[i] = angles[i] + s*dAngles[i]
		}
		q := lp.reconstruct(root.Add(dRoot.Mul(s)), heading+s*dHeading, current)
		if !lp.checker.IsValid(q) || !lp.checker.StepIsValid(prev, q) {
			break
		}
		ext.steps = append(ext.steps, q)
		ext.edgeLength += prev.RootDisplacement(q)
		prev = q
		if lp.checker.GoalReached(q, lp.goal) {
			ext.goal = true
			break
		}
	}
	if len(ext.steps) == 0 {
		return nil, ErrNoProgress
	}
	return ext, nil
}

// reconstruct builds a configuration from its root position, the heading of the first boom and the interior angle
// at every joint between the root and the tip. Each boom is placed at its fixed length.
func (lp *localPlanner) reconstruct(root r2.Point, heading float64, angles []float64) referenceframe.Configuration {
	joints := make([]r2.Point, len(lp.boomLengths)+1)
	joints[0] = root
	joints[1] = spatialmath.PointAtHeading(root, heading, lp.boomLengths[0])
	for i := 1; i < len(lp.boomLengths); i++ {
		back := joints[i-1].Sub(joints[i]).Normalize()
		next := spatialmath.Rotate(back, lp.handedness.sign()*angles[i-1])
		joints[i+1] = joints[i].Add(next.Mul(lp.boomLengths[i]))
	}
	return referenceframe.NewConfiguration(joints)
}
