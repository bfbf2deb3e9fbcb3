package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// PolygonArea returns the unsigned area of the closed polygon through pts (shoelace formula).
func PolygonArea(pts []r2.Point) float64 {
	return math.Abs(SignedPolygonArea(pts))
}

// SignedPolygonArea is positive for counter-clockwise vertex order and negative for clockwise.
func SignedPolygonArea(pts []r2.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.
	for i, p := range pts {
		sum += p.Cross(pts[(i+1)%len(pts)])
	}
	return sum / 2
}

// InteriorAngle returns the angle at vertex b between rays b->a and b->c, in [0, pi].
func InteriorAngle(a, b, c r2.Point) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	denom := u.Norm() * v.Norm()
	if denom == 0 {
		return 0
	}
	// clamp against rounding just outside [-1, 1], which acos turns into NaN
	cos := math.Max(-1, math.Min(1, u.Dot(v)/denom))
	return math.Acos(cos)
}
