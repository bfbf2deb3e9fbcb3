package spatialmath

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestNewRect(t *testing.T) {
	rect, err := NewRect(r2.Point{X: 0.1, Y: 0.2}, 0.3, 0.4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rect.Lo(), test.ShouldResemble, r2.Point{X: 0.1, Y: 0.2})
	test.That(t, RectWidth(rect), test.ShouldAlmostEqual, 0.3)
	test.That(t, RectHeight(rect), test.ShouldAlmostEqual, 0.4)

	_, err = NewRect(r2.Point{}, -1, 1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewRectFromCorners(t *testing.T) {
	rect, err := NewRectFromCorners(
		r2.Point{X: 0.2, Y: 0.2},
		r2.Point{X: 0.4, Y: 0.2},
		r2.Point{X: 0.4, Y: 0.6},
		r2.Point{X: 0.2, Y: 0.6},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rect.Hi(), test.ShouldResemble, r2.Point{X: 0.4, Y: 0.6})

	_, err = NewRectFromCorners(
		r2.Point{X: 0.2, Y: 0.2},
		r2.Point{X: 0.4, Y: 0.3},
		r2.Point{X: 0.4, Y: 0.6},
	)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewRectFromCorners()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSegmentIntersectsRect(t *testing.T) {
	rect, err := NewRect(r2.Point{X: 0.4, Y: 0.4}, 0.2, 0.2)
	test.That(t, err, test.ShouldBeNil)

	cases := []struct {
		name     string
		a, b     r2.Point
		expected bool
	}{
		{"fully inside", r2.Point{X: 0.45, Y: 0.45}, r2.Point{X: 0.55, Y: 0.55}, true},
		{"crosses through", r2.Point{X: 0.3, Y: 0.5}, r2.Point{X: 0.7, Y: 0.5}, true},
		{"touches corner", r2.Point{X: 0.3, Y: 0.3}, r2.Point{X: 0.4, Y: 0.4}, true},
		{"runs along edge", r2.Point{X: 0.3, Y: 0.4}, r2.Point{X: 0.7, Y: 0.4}, true},
		{"misses below", r2.Point{X: 0.3, Y: 0.3}, r2.Point{X: 0.7, Y: 0.3}, false},
		{"misses diagonally", r2.Point{X: 0.3, Y: 0.6}, r2.Point{X: 0.35, Y: 0.7}, false},
		{"bounding boxes overlap only", r2.Point{X: 0.3, Y: 0.55}, r2.Point{X: 0.45, Y: 0.7}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, SegmentIntersectsRect(c.a, c.b, rect), test.ShouldEqual, c.expected)
			test.That(t, SegmentIntersectsRect(c.b, c.a, rect), test.ShouldEqual, c.expected)
		})
	}
}
