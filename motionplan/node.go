package motionplan

import (
	"github.com/pkg/errors"

	"go.viam.com/asvplan/referenceframe"
)

// nodeID is the handle of a node within its tree.
type nodeID int

const (
	rootID   nodeID = 0
	noParent nodeID = -1
)

// node is a configuration reached by the planner, along with the validated steps that lead to it from its parent.
type node struct {
	q      referenceframe.Configuration
	parent nodeID

	// intermediates are the steps from the parent's configuration up to, but excluding, q.
	intermediates []referenceframe.Configuration

	// distance travelled by the root joint from the parent
	edgeLength float64
	// accumulated distance from the root
	cost float64
	goal bool
}

// Q returns the configuration of the node.
func (n *node) Q() referenceframe.Configuration {
	return n.q
}

// Cost returns the distance from the root of the tree.
func (n *node) Cost() float64 {
	return n.cost
}

// rrtTree is an arena of nodes. Nodes are only ever appended; a node's handle is its position in the arena.
type rrtTree struct {
	nodes []*node
}

func newRRTTree(root referenceframe.Configuration) *rrtTree {
	return &rrtTree{nodes: []*node{{q: root, parent: noParent}}}
}

// add inserts a child of parent. The cost is derived from the parent.
func (t *rrtTree) add(parent nodeID, ext *extension) (nodeID, error) {
	if !t.contains(parent) {
		return noParent, errors.Errorf("parent node %d does not exist", parent)
	}
	if len(ext.steps) == 0 {
		return noParent, ErrNoProgress
	}
	last := len(ext.steps) - 1
	n := &node{
		q:             ext.steps[last],
		parent:        parent,
		intermediates: ext.steps[:last],
		edgeLength:    ext.edgeLength,
		cost:          t.nodes[parent].cost + ext.edgeLength,
		goal:          ext.goal,
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1), nil
}

func (t *rrtTree) contains(id nodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *rrtTree) get(id nodeID) *node {
	return t.nodes[id]
}

func (t *rrtTree) size() int {
	return len(t.nodes)
}

// lineage returns the handles from the root down to id, inclusive.
func (t *rrtTree) lineage(id nodeID) []nodeID {
	path := []nodeID{}
	// parents always precede their children, so the walk is bounded by the arena size
	for cur := id; cur != noParent && len(path) <= len(t.nodes); cur = t.nodes[cur].parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
