package motionplan

import (
	"github.com/golang/geo/r2"

	"go.viam.com/asvplan/referenceframe"
)

// Plan is a solved path from the start configuration to the goal.
type Plan struct {
	// Path begins with the start configuration and ends with the goal. Consecutive configurations differ by at most
	// one step.
	Path []referenceframe.Configuration

	// Length is the total distance travelled by the root joint.
	Length float64

	// Attempts is the number of planning attempts made, including the successful one.
	Attempts int
	// Samples is the number of samples drawn across all attempts.
	Samples int
	// Nodes is the size of the tree that reached the goal.
	Nodes int

	// Tree holds the root joint positions of every edge of the successful tree.
	Tree []TreeEdge
}

// TreeEdge connects the root joint of a node's parent to the root joint of the node.
type TreeEdge struct {
	From, To r2.Point
}

// Steps returns the number of moves in the path.
func (p *Plan) Steps() int {
	if len(p.Path) == 0 {
		return 0
	}
	return len(p.Path) - 1
}

// reconstructPath walks from the goal-reaching node back to the root. The returned path starts with the problem's
// start configuration, lists every intermediate step and node configuration in order, and ends with the true goal
// unless the last node already sits on it.
// The length is the sum of edge lengths plus the root displacement from the last tree configuration to the goal.
func reconstructPath(tree *rrtTree, goalNode nodeID, start, goal referenceframe.Configuration) ([]referenceframe.Configuration, float64) {
	path := []referenceframe.Configuration{start}
	length := 0.
	for _, id := range tree.lineage(goalNode) {
		if id == rootID {
			continue
		}
		n := tree.get(id)
		path = append(path, n.intermediates...)
		path = append(path, n.q)
		length += n.edgeLength
	}
	if last := path[len(path)-1]; !last.Equal(goal) {
		length += last.RootDisplacement(goal)
		path = append(path, goal)
	}
	return path, length
}

// treeEdges lists the edges of the tree by their root joints.
func treeEdges(tree *rrtTree) []TreeEdge {
	edges := make([]TreeEdge, 0, tree.size()-1)
	for _, n := range tree.nodes {
		if n.parent == noParent {
			continue
		}
		edges = append(edges, TreeEdge{From: tree.get(n.parent).q.Joint(0), To: n.q.Joint(0)})
	}
	return edges
}
