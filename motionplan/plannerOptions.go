package motionplan

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/asvplan/utils"
)

// default values for planning options.
const (
	// Number of samples a single attempt may draw before it is abandoned.
	defaultSampleBudget = 5000

	// Number of attempts before giving up. Zero means keep trying.
	defaultMaxAttempts = 0

	// Number of candidate configurations rejection sampling may try for a single sample.
	defaultMaxSampleAttempts = 10000

	// Probability of drawing a uniform sample.
	defaultUniformProbability = 0.7

	// Probability of drawing a sample seeded in the tallest gap. The goal is sampled otherwise.
	defaultGapProbability = 0.2

	// Heading cones of gap samples are narrowed by this factor.
	defaultGapConeScale = 0.6

	// No joint moves further than this in one interpolation step.
	defaultMicroStep = 0.0005

	// random seed.
	defaultRandomSeed = 0

	// default number of seconds to try to solve in total before returning. Zero means no limit.
	defaultTimeout = 0.
)

// NewBasicPlannerOptions specifies a set of basic options for the planner.
func NewBasicPlannerOptions() *PlannerOptions {
	opt := &PlannerOptions{}
	opt.SampleBudget = defaultSampleBudget
	opt.MaxAttempts = defaultMaxAttempts
	opt.MaxSampleAttempts = defaultMaxSampleAttempts
	opt.UniformProbability = defaultUniformProbability
	opt.GapProbability = defaultGapProbability
	opt.GapConeScale = defaultGapConeScale
	opt.MicroStep = defaultMicroStep
	opt.NearestNeighbor = KDTreeNeighborIndex
	opt.Timeout = defaultTimeout
	opt.RandomSeed = utils.GetenvInt(utils.RandomSeedEnvVar, defaultRandomSeed)
	return opt
}

// PlannerOptions are a set of options to be passed to a planner which will specify how to solve a motion planning problem.
type PlannerOptions struct {
	// Samples drawn by one attempt before the tree is thrown away and planning restarts.
	SampleBudget int `json:"sample_budget"`

	// Attempts before returning ErrAttemptsExhausted. Zero means unlimited.
	MaxAttempts int `json:"max_attempts"`

	// Candidates rejection sampling may try before returning ErrSamplingExhausted.
	MaxSampleAttempts int `json:"max_sample_attempts"`

	UniformProbability float64 `json:"uniform_probability"`
	GapProbability     float64 `json:"gap_probability"`

	// Fraction of the heading cone used when sampling in a gap.
	GapConeScale float64 `json:"gap_cone_scale"`

	// Largest joint displacement of one interpolation step.
	MicroStep float64 `json:"micro_step"`

	// Which nearest neighbor index to use, "linear" or "kdtree".
	NearestNeighbor string `json:"nearest_neighbor"`

	// Per-joint weights of the nearest neighbor metric. Missing weights are 1.
	JointWeights []float64 `json:"joint_weights"`

	// The random seed used during planning. This parameter guarantees deterministic
	// outputs for a given set of identical inputs
	RandomSeed int `json:"rseed"`

	// Number of seconds before terminating planner
	Timeout float64 `json:"timeout"`
}

// NewPlannerOptionsFromExtra returns basic default settings updated by overridden parameters
// found in extra.
func NewPlannerOptionsFromExtra(extra map[string]interface{}) (*PlannerOptions, error) {
	opt := NewBasicPlannerOptions()

	jsonString, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(jsonString, opt)
	if err != nil {
		return nil, err
	}

	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// Validate reports every option that is out of range.
func (p *PlannerOptions) Validate() error {
	var errs error
	if p.SampleBudget <= 0 {
		errs = multierr.Append(errs, errors.New("sample_budget must be positive"))
	}
	if p.MaxAttempts < 0 {
		errs = multierr.Append(errs, errors.New("max_attempts can't be negative"))
	}
	if p.MaxSampleAttempts <= 0 {
		errs = multierr.Append(errs, errors.New("max_sample_attempts must be positive"))
	}
	if p.UniformProbability < 0 || p.GapProbability < 0 || p.UniformProbability+p.GapProbability > 1 {
		errs = multierr.Append(errs, errors.Errorf(
			"uniform_probability %f and gap_probability %f must be non-negative and sum to at most 1",
			p.UniformProbability, p.GapProbability,
		))
	}
	if p.GapConeScale <= 0 || p.GapConeScale > 1 {
		errs = multierr.Append(errs, errors.New("gap_cone_scale must be in (0, 1]"))
	}
	if p.MicroStep <= 0 || p.MicroStep > defaultMaxStep {
		errs = multierr.Append(errs, errors.Errorf("micro_step must be in (0, %g]", defaultMaxStep))
	}
	if !lo.Contains([]string{LinearNeighborIndex, KDTreeNeighborIndex}, p.NearestNeighbor) {
		errs = multierr.Append(errs, errors.Errorf("unknown nearest_neighbor %q", p.NearestNeighbor))
	}
	if lo.SomeBy(p.JointWeights, func(w float64) bool { return w < 0 }) {
		errs = multierr.Append(errs, errors.New("joint_weights can't be negative"))
	}
	if p.Timeout < 0 {
		errs = multierr.Append(errs, errors.New("timeout can't be negative"))
	}
	return errs
}

func (p *PlannerOptions) timeoutDuration() time.Duration {
	return time.Duration(p.Timeout * float64(time.Second))
}
