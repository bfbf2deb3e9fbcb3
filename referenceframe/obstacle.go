package referenceframe

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r2"
)

// Obstacle is a static axis-aligned rectangle the chain may not touch.
type Obstacle struct {
	Rect r2.Rect
	// margin grows the rectangle when it is indexed, so that near misses are still broad-phase candidates.
	margin float64
}

// NewObstacle returns an obstacle covering rect.
func NewObstacle(rect r2.Rect) *Obstacle {
	return &Obstacle{Rect: rect}
}

// Position returns the lower-left corner of the obstacle.
func (o *Obstacle) Position() r2.Point {
	return o.Rect.Lo()
}

// Width returns the x-extent of the obstacle.
func (o *Obstacle) Width() float64 {
	return o.Rect.X.Length()
}

// Height returns the y-extent of the obstacle.
func (o *Obstacle) Height() float64 {
	return o.Rect.Y.Length()
}

// Bounds implements rtreego.Spatial.
func (o *Obstacle) Bounds() rtreego.Rect {
	grown := o.Rect.ExpandedByMargin(o.margin)
	r, err := rtreego.NewRectFromPoints(
		rtreego.Point{grown.X.Lo, grown.Y.Lo},
		rtreego.Point{grown.X.Hi, grown.Y.Hi},
	)
	if err != nil {
		// points are always two dimensional
		panic(err)
	}
	return r
}

func (o *Obstacle) String() string {
	return fmt.Sprintf("obstacle at (%g, %g) size %g x %g", o.Rect.X.Lo, o.Rect.Y.Lo, o.Width(), o.Height())
}
