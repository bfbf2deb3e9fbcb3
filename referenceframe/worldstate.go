package referenceframe

import (
	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/asvplan/spatialmath"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// UnitWorkspace is the default workspace, the unit square.
var UnitWorkspace = r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 0, Hi: 1}}

// WorldState is the static environment of a planning problem: the bounded workspace and the
// obstacles within it. Obstacles are indexed in an R-tree for collision queries.
type WorldState struct {
	workspace r2.Rect
	margin    float64
	obstacles []*Obstacle
	index     *rtreego.Rtree
}

// NewWorldState builds a world over the given workspace. Every obstacle is grown by margin for collision
// purposes. The obstacle slice is copied and never modified.
func NewWorldState(workspace r2.Rect, obstacles []*Obstacle, margin float64) (*WorldState, error) {
	if workspace.IsEmpty() || workspace.X.Length() <= 0 || workspace.Y.Length() <= 0 {
		return nil, errors.Errorf("workspace %v has no area", workspace)
	}
	if margin < 0 {
		return nil, errors.Errorf("collision margin must be non-negative, got %f", margin)
	}
	ws := &WorldState{
		workspace: workspace,
		margin:    margin,
		obstacles: make([]*Obstacle, 0, len(obstacles)),
		index:     rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
	}
	for i, o := range obstacles {
		if o == nil || o.Rect.IsEmpty() {
			return nil, NewDegenerateObstacleError(i)
		}
		indexed := &Obstacle{Rect: o.Rect, margin: margin}
		ws.obstacles = append(ws.obstacles, indexed)
		ws.index.Insert(indexed)
	}
	return ws, nil
}

// Workspace returns the workspace bounds.
func (ws *WorldState) Workspace() r2.Rect {
	return ws.workspace
}

// Obstacles returns a copy of the obstacle list.
func (ws *WorldState) Obstacles() []*Obstacle {
	out := make([]*Obstacle, 0, len(ws.obstacles))
	for _, o := range ws.obstacles {
		out = append(out, NewObstacle(o.Rect))
	}
	return out
}

// InBounds reports whether every joint lies within the workspace grown by the margin.
func (ws *WorldState) InBounds(c Configuration) bool {
	grown := ws.workspace.ExpandedByMargin(ws.margin)
	for _, j := range c.joints {
		if !grown.ContainsPoint(j) {
			return false
		}
	}
	return true
}

// SegmentCollides reports whether the segment a-b touches any obstacle grown by the margin.
func (ws *WorldState) SegmentCollides(a, b r2.Point) bool {
	if ws.index.Size() == 0 {
		return false
	}
	// rtreego treats touching rectangles as disjoint, so the query box is padded
	pad := ws.margin + 1e-9
	query, err := rtreego.NewRectFromPoints(
		rtreego.Point{min(a.X, b.X) - pad, min(a.Y, b.Y) - pad},
		rtreego.Point{max(a.X, b.X) + pad, max(a.Y, b.Y) + pad},
	)
	if err != nil {
		panic(err)
	}
	for _, s := range ws.index.SearchIntersect(query) {
		o := s.(*Obstacle)
		if spatialmath.SegmentIntersectsRect(a, b, o.Rect.ExpandedByMargin(ws.margin)) {
			return true
		}
	}
	return false
}

// Collides reports whether any boom of c touches an obstacle.
func (ws *WorldState) Collides(c Configuration) bool {
	for i := 0; i+1 < len(c.joints); i++ {
		if ws.SegmentCollides(c.joints[i], c.joints[i+1]) {
			return true
		}
	}
	// a single joint chain is a point
	if len(c.joints) == 1 {
		return ws.SegmentCollides(c.joints[0], c.joints[0])
	}
	return false
}
