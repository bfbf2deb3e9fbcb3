package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/kdtree"

	"go.viam.com/asvplan/referenceframe"
)

// the set of supported nearest neighbor indexes.
const (
	LinearNeighborIndex = "linear"
	KDTreeNeighborIndex = "kdtree"
)

// nearestNeighborIndex answers which tree node is closest to a query configuration. Distance is euclidean over
// all joint coordinates with each joint's squared displacement scaled by its weight.
type nearestNeighborIndex interface {
	insert(id nodeID)
	nearest(q referenceframe.Configuration) nodeID
}

func newNearestNeighborIndex(kind string, tree *rrtTree, weights []float64) (nearestNeighborIndex, error) {
	switch kind {
	case LinearNeighborIndex:
		return &linearIndex{tree: tree, weights: weights}, nil
	case KDTreeNeighborIndex, "":
		return &kdIndex{tree: tree, weights: weights, kd: &kdtree.Tree{}}, nil
	default:
		return nil, errors.Errorf("unknown nearest neighbor index %q", kind)
	}
}

// linearIndex scans every inserted node. Ties go to the node inserted first.
type linearIndex struct {
	tree    *rrtTree
	weights []float64
	ids     []nodeID
}

func (nm *linearIndex) insert(id nodeID) {
	nm.ids = append(nm.ids, id)
}

func (nm *linearIndex) nearest(q referenceframe.Configuration) nodeID {
	bestDist := math.Inf(1)
	best := noParent
	for _, id := range nm.ids {
		dist := nm.tree.get(id).q.WeightedDistance(q, nm.weights)
		if dist < bestDist {
			bestDist = dist
			best = id
		}
	}
	return best
}

// kdIndex keeps the flattened, weight-scaled coordinates of every inserted node in a k-d tree.
type kdIndex struct {
	tree    *rrtTree
	weights []float64
	kd      *kdtree.Tree
}

func (nm *kdIndex) insert(id nodeID) {
	nm.kd.Insert(newKDPoint(id, nm.tree.get(id).q, nm.weights), false)
}

func (nm *kdIndex) nearest(q referenceframe.Configuration) nodeID {
	found, _ := nm.kd.Nearest(newKDPoint(noParent, q, nm.weights))
	if found == nil {
		return noParent
	}
	return found.(*kdPoint).id
}

// kdPoint is a configuration as a point in 2N-dimensional space.
type kdPoint struct {
	id     nodeID
	coords []float64
}

// newKDPoint scales each joint's coordinates by the square root of its weight so that squared euclidean distance
// between points equals the weighted squared distance between configurations.
func newKDPoint(id nodeID, q referenceframe.Configuration, weights []float64) *kdPoint {
	coords := q.Floats()
	for i := range weights {
		if 2*i+1 >= len(coords) {
			break
		}
		s := math.Sqrt(weights[i])
		coords[2*i] *= s
		coords[2*i+1] *= s
	}
	return &kdPoint{id: id, coords: coords}
}

func (p *kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.coords[d] - c.(*kdPoint).coords[d]
}

func (p *kdPoint) Dims() int {
	return len(p.coords)
}

func (p *kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(*kdPoint)
	sum := 0.
	for i, v := range p.coords {
		d := v - q.coords[i]
		sum += d * d
	}
	return sum
}
