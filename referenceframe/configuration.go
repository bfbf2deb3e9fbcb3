package referenceframe

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/asvplan/spatialmath"
)

// Configuration is a pose of the boom chain: the position of every joint, root first.
// A Configuration is never modified after construction.
type Configuration struct {
	joints []r2.Point
}

// NewConfiguration copies the given joint positions into a new Configuration.
func NewConfiguration(joints []r2.Point) Configuration {
	c := make([]r2.Point, len(joints))
	copy(c, joints)
	return Configuration{joints: c}
}

// NewConfigurationFromFloats builds a Configuration from a flat list of x y pairs.
func NewConfigurationFromFloats(vals []float64) (Configuration, error) {
	if len(vals)%2 != 0 {
		return Configuration{}, NewOddCoordinateCountError(len(vals))
	}
	joints := make([]r2.Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		joints = append(joints, r2.Point{X: vals[i], Y: vals[i+1]})
	}
	return Configuration{joints: joints}, nil
}

// NumJoints returns the number of joints in the chain.
func (c Configuration) NumJoints() int {
	return len(c.joints)
}

// Joint returns the position of joint i.
func (c Configuration) Joint(i int) r2.Point {
	return c.joints[i]
}

// Joints returns a copy of every joint position.
func (c Configuration) Joints() []r2.Point {
	out := make([]r2.Point, len(c.joints))
	copy(out, c.joints)
	return out
}

// Floats flattens the configuration to x0 y0 x1 y1 ...
func (c Configuration) Floats() []float64 {
	out := make([]float64, 0, 2*len(c.joints))
	for _, j := range c.joints {
		out = append(out, j.X, j.Y)
	}
	return out
}

// BoomLength returns the length of boom i, which runs from joint i to joint i+1.
func (c Configuration) BoomLength(i int) float64 {
	return c.joints[i+1].Sub(c.joints[i]).Norm()
}

// BoomLengths returns the length of every boom.
func (c Configuration) BoomLengths() []float64 {
	if len(c.joints) < 2 {
		return nil
	}
	out := make([]float64, len(c.joints)-1)
	for i := range out {
		out[i] = c.BoomLength(i)
	}
	return out
}

// Heading returns the angle of the first boom. A chain with a single joint has heading 0.
func (c Configuration) Heading() float64 {
	if len(c.joints) < 2 {
		return 0
	}
	return spatialmath.Heading(c.joints[0], c.joints[1])
}

// InteriorAngle returns the unsigned angle at interior joint i between its two adjacent booms.
func (c Configuration) InteriorAngle(i int) float64 {
	return spatialmath.InteriorAngle(c.joints[i-1], c.joints[i], c.joints[i+1])
}

// Turn returns the cross product of boom i and boom i+1. Positive values turn
// counter-clockwise, negative clockwise and zero means the booms are collinear.
func (c Configuration) Turn(i int) float64 {
	a := c.joints[i+1].Sub(c.joints[i])
	b := c.joints[i+2].Sub(c.joints[i+1])
	return a.Cross(b)
}

// jointDistances returns the euclidean distance between matching joints. Both configurations must
// have the same number of joints.
func (c Configuration) jointDistances(other Configuration) []float64 {
	out := make([]float64, len(c.joints))
	for i, j := range c.joints {
		out[i] = j.Sub(other.joints[i]).Norm()
	}
	return out
}

// MaxJointDistance returns the largest distance any single joint is from its counterpart in other.
func (c Configuration) MaxJointDistance(other Configuration) float64 {
	if len(c.joints) == 0 {
		return 0
	}
	return floats.Max(c.jointDistances(other))
}

// TotalDistance returns the sum of joint displacements between c and other.
func (c Configuration) TotalDistance(other Configuration) float64 {
	return floats.Sum(c.jointDistances(other))
}

// Distance returns the euclidean distance over all joint coordinates.
func (c Configuration) Distance(other Configuration) float64 {
	return floats.Distance(c.Floats(), other.Floats(), 2)
}

// WeightedDistance is Distance with the squared displacement of joint i scaled by weights[i].
// Missing weights default to 1.
func (c Configuration) WeightedDistance(other Configuration, weights []float64) float64 {
	sum := 0.
	for i, j := range c.joints {
		d := j.Sub(other.joints[i])
		w := 1.
		if i < len(weights) {
			w = weights[i]
		}
		sum += w * d.Dot(d)
	}
	return math.Sqrt(sum)
}

// RootDisplacement returns how far the root joint moved between c and other.
func (c Configuration) RootDisplacement(other Configuration) float64 {
	if len(c.joints) == 0 {
		return 0
	}
	return c.joints[0].Sub(other.joints[0]).Norm()
}

// Equal reports whether both configurations have exactly the same joint positions.
func (c Configuration) Equal(other Configuration) bool {
	if len(c.joints) != len(other.joints) {
		return false
	}
	for i, j := range c.joints {
		if j != other.joints[i] {
			return false
		}
	}
	return true
}

// AlmostEqual reports whether every joint is within tol of its counterpart in other.
func (c Configuration) AlmostEqual(other Configuration, tol float64) bool {
	if len(c.joints) != len(other.joints) {
		return false
	}
	return c.MaxJointDistance(other) <= tol
}

// String formats the configuration as space separated x y pairs.
func (c Configuration) String() string {
	parts := make([]string, 0, 2*len(c.joints))
	for _, v := range c.Floats() {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
