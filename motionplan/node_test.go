package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/asvplan/referenceframe"
)

func TestTreeAdd(t *testing.T) {
	tree := newRRTTree(config(0.1, 0.1, 0.15, 0.1))
	test.That(t, tree.size(), test.ShouldEqual, 1)
	test.That(t, tree.get(rootID).parent, test.ShouldEqual, noParent)

	steps := []referenceframe.Configuration{
		config(0.1005, 0.1, 0.1505, 0.1),
		config(0.101, 0.1, 0.151, 0.1),
	}
	id, err := tree.add(rootID, &extension{steps: steps, edgeLength: 0.001})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, id, test.ShouldEqual, nodeID(1))
	n := tree.get(id)
	test.That(t, n.Q(), test.ShouldResemble, steps[1])
	test.That(t, len(n.intermediates), test.ShouldEqual, 1)
	test.That(t, n.Cost(), test.ShouldAlmostEqual, 0.001)

	child, err := tree.add(id, &extension{steps: []referenceframe.Configuration{config(0.102, 0.1, 0.152, 0.1)}, edgeLength: 0.001, goal: true})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.get(child).Cost(), test.ShouldAlmostEqual, 0.002)
	test.That(t, tree.get(child).goal, test.ShouldBeTrue)
	test.That(t, tree.get(child).intermediates, test.ShouldBeEmpty)

	test.That(t, tree.lineage(child), test.ShouldResemble, []nodeID{rootID, id, child})
	test.That(t, tree.lineage(rootID), test.ShouldResemble, []nodeID{rootID})

	_, err = tree.add(nodeID(7), &extension{steps: steps})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = tree.add(rootID, &extension{})
	test.That(t, err, test.ShouldBeError, ErrNoProgress)
	test.That(t, tree.size(), test.ShouldEqual, 3)
}
