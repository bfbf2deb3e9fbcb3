package motionplan

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/asvplan/referenceframe"
)

func rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func config(pts ...float64) referenceframe.Configuration {
	q, err := referenceframe.NewConfigurationFromFloats(pts)
	if err != nil {
		panic(err)
	}
	return q
}

// triangle is a valid clockwise three joint chain.
func triangle(x, y float64) referenceframe.Configuration {
	return config(x, y, x+0.05, y, x+0.025, y-0.04)
}

func twoJointProblem(obstacles ...*referenceframe.Obstacle) *Problem {
	return NewProblem(config(0.05, 0.05, 0.1, 0.05), config(0.9, 0.9, 0.95, 0.9), obstacles)
}

func newTestChecker(t *testing.T, problem *Problem) *ConstraintChecker {
	t.Helper()
	checker, err := NewConstraintChecker(problem)
	test.That(t, err, test.ShouldBeNil)
	return checker
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1)) //nolint:gosec
}

// enclosedProblem puts the goal inside a closed ring of four obstacles.
func enclosedProblem() *Problem {
	ring := []*referenceframe.Obstacle{
		referenceframe.NewObstacle(rect(0.4, 0.4, 0.6, 0.42)),
		referenceframe.NewObstacle(rect(0.4, 0.58, 0.6, 0.6)),
		referenceframe.NewObstacle(rect(0.4, 0.42, 0.42, 0.58)),
		referenceframe.NewObstacle(rect(0.58, 0.42, 0.6, 0.58)),
	}
	return NewProblem(config(0.05, 0.05, 0.1, 0.05), config(0.475, 0.5, 0.525, 0.5), ring)
}
