package motionplan

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"go.viam.com/asvplan/referenceframe"
	"go.viam.com/asvplan/spatialmath"
)

// sampleKind is the strategy used to produce a sample.
type sampleKind int

const (
	uniformSample sampleKind = iota
	gapSample
	goalSample
)

func (k sampleKind) String() string {
	switch k {
	case uniformSample:
		return "uniform"
	case gapSample:
		return "gap"
	case goalSample:
		return "goal"
	default:
		return "unknown"
	}
}

// sampler produces target configurations for the planner to grow towards.
type sampler struct {
	problem    *Problem
	checker    *ConstraintChecker
	opts       *PlannerOptions
	randseed   *rand.Rand
	handedness handedness
}

func newSampler(problem *Problem, checker *ConstraintChecker, opts *PlannerOptions, randseed *rand.Rand) *sampler {
	return &sampler{
		problem:    problem,
		checker:    checker,
		opts:       opts,
		randseed:   randseed,
		handedness: chainHandedness(problem.Start),
	}
}

// sample picks a strategy at random and returns a target along with the strategy used. Uniform and gap samples
// return ErrSamplingExhausted if no valid configuration was found within the attempt limit.
func (s *sampler) sample() (referenceframe.Configuration, sampleKind, error) {
	r := s.randseed.Float64()
	switch {
	case r < s.opts.UniformProbability:
		q, err := s.uniform()
		return q, uniformSample, err
	case r < s.opts.UniformProbability+s.opts.GapProbability:
		q, err := s.gap()
		return q, gapSample, err
	default:
		return s.problem.Goal, goalSample, nil
	}
}

// uniform samples a valid configuration with its root anywhere in the workspace.
func (s *sampler) uniform() (referenceframe.Configuration, error) {
	return s.rejectionSample(s.problem.Workspace, 1)
}

// gap samples a valid configuration with its root inside the tallest gap between obstacles and a narrowed heading
// cone. Without gaps it behaves like uniform.
func (s *sampler) gap() (referenceframe.Configuration, error) {
	region, ok := tallestGap(gapRegions(s.problem.Obstacles, s.problem.Workspace))
	if !ok {
		return s.uniform()
	}
	return s.rejectionSample(region, s.opts.GapConeScale)
}

func (s *sampler) rejectionSample(region r2.Rect, coneScale float64) (referenceframe.Configuration, error) {
	for i := 0; i < s.opts.MaxSampleAttempts; i++ {
		q := s.placeChain(s.randomPoint(region), coneScale)
		// a chain turning the other way can never be reached from the start
		if q.NumJoints() >= 3 && chainHandedness(q) != s.handedness {
			continue
		}
		if s.checker.IsValid(q) {
			return q, nil
		}
	}
	return referenceframe.Configuration{}, ErrSamplingExhausted
}

func (s *sampler) randomPoint(region r2.Rect) r2.Point {
	return r2.Point{
		X: region.X.Lo + s.randseed.Float64()*region.X.Length(),
		Y: region.Y.Lo + s.randseed.Float64()*region.Y.Length(),
	}
}

// placeChain lays the booms out from root. The first heading is uniform; each later heading is drawn from the
// headings reachable by turning further in the chain's direction without completing a full revolution from the
// first, narrowed by coneScale.
func (s *sampler) placeChain(root r2.Point, coneScale float64) referenceframe.Configuration {
	joints := make([]r2.Point, 0, s.problem.NumJoints())
	joints = append(joints, root)

	first := s.randseed.Float64()*2*math.Pi - math.Pi
	heading := first
	for i, length := range s.problem.BoomLengths {
		if i > 0 {
			// remaining turn before the chain would wrap past its first heading
			var remaining float64
			if s.handedness == clockwise {
				remaining = heading - (first - 2*math.Pi)
			} else {
				remaining = (first + 2*math.Pi) - heading
			}
			heading -= s.handedness.sign() * coneScale * s.randseed.Float64() * remaining
		}
		joints = append(joints, spatialmath.PointAtHeading(joints[i], heading, length))
	}
	return referenceframe.NewConfiguration(joints)
}
