package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestPolygonArea(t *testing.T) {
	square := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	test.That(t, PolygonArea(square), test.ShouldAlmostEqual, 1)
	test.That(t, SignedPolygonArea(square), test.ShouldAlmostEqual, 1)

	reversed := []r2.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	test.That(t, SignedPolygonArea(reversed), test.ShouldAlmostEqual, -1)
	test.That(t, PolygonArea(reversed), test.ShouldAlmostEqual, 1)

	test.That(t, PolygonArea(square[:2]), test.ShouldEqual, 0)
}

func TestInteriorAngle(t *testing.T) {
	test.That(t, InteriorAngle(r2.Point{X: 1, Y: 0}, r2.Point{}, r2.Point{X: 0, Y: 1}), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, InteriorAngle(r2.Point{X: 1, Y: 0}, r2.Point{}, r2.Point{X: -1, Y: 0}), test.ShouldAlmostEqual, math.Pi)
	test.That(t, InteriorAngle(r2.Point{X: 1, Y: 0}, r2.Point{}, r2.Point{X: 2, Y: 0}), test.ShouldAlmostEqual, 0)
	test.That(t, InteriorAngle(r2.Point{}, r2.Point{}, r2.Point{X: 2, Y: 0}), test.ShouldEqual, 0)
}
