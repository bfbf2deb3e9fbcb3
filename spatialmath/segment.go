package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// orientation returns the sign of the turn a->b->c: 1 for counter-clockwise, -1 for clockwise and
// 0 for collinear points.
func orientation(a, b, c r2.Point) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// onSegment assumes a, b, p are collinear and reports whether p lies within the bounds of a-b.
func onSegment(a, b, p r2.Point) bool {
	return p.X <= math.Max(a.X, b.X) && p.X >= math.Min(a.X, b.X) &&
		p.Y <= math.Max(a.Y, b.Y) && p.Y >= math.Min(a.Y, b.Y)
}

// SegmentsIntersect reports whether closed segments a1-a2 and b1-b2 share at least one point.
// Touching endpoints and collinear overlap count as intersections.
func SegmentsIntersect(a1, a2, b1, b2 r2.Point) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(a1, a2, b1):
		return true
	case o2 == 0 && onSegment(a1, a2, b2):
		return true
	case o3 == 0 && onSegment(b1, b2, a1):
		return true
	case o4 == 0 && onSegment(b1, b2, a2):
		return true
	}
	return false
}

// Heading returns the angle, in radians, of the vector from a to b.
func Heading(a, b r2.Point) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X)
}

// PointAtHeading returns the point `length` away from origin along the given heading.
func PointAtHeading(origin r2.Point, heading, length float64) r2.Point {
	return r2.Point{X: origin.X + length*math.Cos(heading), Y: origin.Y + length*math.Sin(heading)}
}

// Rotate rotates v counter-clockwise by angle radians about the origin.
func Rotate(v r2.Point, angle float64) r2.Point {
	sin, cos := math.Sincos(angle)
	return r2.Point{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
