package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/asvplan/referenceframe"
)

func TestReconstructPath(t *testing.T) {
	start := config(0.1, 0.1, 0.15, 0.1)
	goal := config(0.1035, 0.1, 0.1535, 0.1)
	tree := newRRTTree(start)

	first, err := tree.add(rootID, &extension{
		steps:      []referenceframe.Configuration{config(0.101, 0.1, 0.151, 0.1), config(0.102, 0.1, 0.152, 0.1)},
		edgeLength: 0.002,
	})
	test.That(t, err, test.ShouldBeNil)
	// a branch that is not on the way to the goal
	_, err = tree.add(rootID, &extension{
		steps:      []referenceframe.Configuration{config(0.1, 0.101, 0.15, 0.101)},
		edgeLength: 0.001,
	})
	test.That(t, err, test.ShouldBeNil)
	last, err := tree.add(first, &extension{
		steps:      []referenceframe.Configuration{config(0.103, 0.1, 0.153, 0.1)},
		edgeLength: 0.001,
		goal:       true,
	})
	test.That(t, err, test.ShouldBeNil)

	path, length := reconstructPath(tree, last, start, goal)
	test.That(t, len(path), test.ShouldEqual, 5)
	test.That(t, path[0].Equal(start), test.ShouldBeTrue)
	test.That(t, path[1].Joint(0).X, test.ShouldAlmostEqual, 0.101)
	test.That(t, path[2].Joint(0).X, test.ShouldAlmostEqual, 0.102)
	test.That(t, path[3].Joint(0).X, test.ShouldAlmostEqual, 0.103)
	test.That(t, path[4].Equal(goal), test.ShouldBeTrue)
	test.That(t, length, test.ShouldAlmostEqual, 0.0035)

	edges := treeEdges(tree)
	test.That(t, len(edges), test.ShouldEqual, 3)
	test.That(t, edges[0].From.X, test.ShouldAlmostEqual, 0.1)
	test.That(t, edges[0].To.X, test.ShouldAlmostEqual, 0.102)

	plan := &Plan{Path: path}
	test.That(t, plan.Steps(), test.ShouldEqual, 4)
	test.That(t, (&Plan{}).Steps(), test.ShouldEqual, 0)
}
