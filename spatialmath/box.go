package spatialmath

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// NewRect creates an axis-aligned rectangle from its lower-left corner, width and height.
func NewRect(lowerLeft r2.Point, width, height float64) (r2.Rect, error) {
	if width < 0 || height < 0 {
		return r2.EmptyRect(), errors.Errorf("rectangle dimensions must be non-negative, got %f x %f", width, height)
	}
	return r2.Rect{
		X: r1.Interval{Lo: lowerLeft.X, Hi: lowerLeft.X + width},
		Y: r1.Interval{Lo: lowerLeft.Y, Hi: lowerLeft.Y + height},
	}, nil
}

// NewRectFromCorners returns the bounding rectangle of the given corner points. The corners must
// describe an axis-aligned rectangle; any other polygon is rejected.
func NewRectFromCorners(corners ...r2.Point) (r2.Rect, error) {
	if len(corners) == 0 {
		return r2.EmptyRect(), errors.New("cannot build a rectangle from zero corners")
	}
	rect := r2.RectFromPoints(corners...)
	for _, c := range corners {
		onX := c.X == rect.X.Lo || c.X == rect.X.Hi
		onY := c.Y == rect.Y.Lo || c.Y == rect.Y.Hi
		if !onX || !onY {
			return r2.EmptyRect(), errors.Errorf("corner %v is not a corner of axis-aligned rectangle %v", c, rect)
		}
	}
	return rect, nil
}

// RectWidth returns the x-extent of the rectangle.
func RectWidth(r r2.Rect) float64 {
	return r.X.Length()
}

// RectHeight returns the y-extent of the rectangle.
func RectHeight(r r2.Rect) float64 {
	return r.Y.Length()
}

// SegmentIntersectsRect reports whether the closed segment a-b touches the closed rectangle.
func SegmentIntersectsRect(a, b r2.Point, rect r2.Rect) bool {
	if rect.IsEmpty() {
		return false
	}
	if rect.ContainsPoint(a) || rect.ContainsPoint(b) {
		return true
	}
	// quick reject on the bounding box of the segment
	if !rect.Intersects(r2.RectFromPoints(a, b)) {
		return false
	}
	v := rect.Vertices()
	for i := range v {
		if SegmentsIntersect(a, b, v[i], v[(i+1)%len(v)]) {
			return true
		}
	}
	return false
}
