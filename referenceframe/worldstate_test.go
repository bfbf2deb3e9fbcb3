package referenceframe

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func TestNewWorldState(t *testing.T) {
	_, err := NewWorldState(rect(0, 0, 0, 1), nil, 0)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewWorldState(UnitWorkspace, nil, -1)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewWorldState(UnitWorkspace, []*Obstacle{NewObstacle(r2.EmptyRect())}, 0)
	test.That(t, err, test.ShouldNotBeNil)

	obstacles := []*Obstacle{NewObstacle(rect(0.4, 0.4, 0.6, 0.6))}
	ws, err := NewWorldState(UnitWorkspace, obstacles, 1e-5)
	test.That(t, err, test.ShouldBeNil)

	out := ws.Obstacles()
	test.That(t, len(out), test.ShouldEqual, 1)
	out[0].Rect = rect(0, 0, 1, 1)
	test.That(t, ws.Obstacles()[0].Rect, test.ShouldResemble, rect(0.4, 0.4, 0.6, 0.6))
	test.That(t, ws.Obstacles()[0].Width(), test.ShouldAlmostEqual, 0.2)
	test.That(t, ws.Obstacles()[0].Position(), test.ShouldResemble, r2.Point{X: 0.4, Y: 0.4})
}

func TestInBounds(t *testing.T) {
	ws, err := NewWorldState(UnitWorkspace, nil, 1e-5)
	test.That(t, err, test.ShouldBeNil)

	inside := NewConfiguration([]r2.Point{{X: 0, Y: 0}, {X: 0.1, Y: 0}})
	test.That(t, ws.InBounds(inside), test.ShouldBeTrue)

	edge := NewConfiguration([]r2.Point{{X: -5e-6, Y: 0}, {X: 0.1, Y: 0}})
	test.That(t, ws.InBounds(edge), test.ShouldBeTrue)

	outside := NewConfiguration([]r2.Point{{X: 0.95, Y: 0.5}, {X: 1.05, Y: 0.5}})
	test.That(t, ws.InBounds(outside), test.ShouldBeFalse)
}

func TestCollides(t *testing.T) {
	obstacles := []*Obstacle{
		NewObstacle(rect(0.4, 0.0, 0.6, 0.4)),
		NewObstacle(rect(0.4, 0.6, 0.6, 1.0)),
	}
	ws, err := NewWorldState(UnitWorkspace, obstacles, 1e-5)
	test.That(t, err, test.ShouldBeNil)

	cases := []struct {
		name     string
		joints   []r2.Point
		expected bool
	}{
		{"through the gap", []r2.Point{{X: 0.3, Y: 0.5}, {X: 0.7, Y: 0.5}}, false},
		{"through the lower obstacle", []r2.Point{{X: 0.3, Y: 0.2}, {X: 0.7, Y: 0.2}}, true},
		{"second boom hits", []r2.Point{{X: 0.3, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.7}}, true},
		{"within margin", []r2.Point{{X: 0.3, Y: 0.400005}, {X: 0.7, Y: 0.400005}}, true},
		{"vertical clear of both", []r2.Point{{X: 0.2, Y: 0.1}, {X: 0.2, Y: 0.9}}, false},
		{"single joint inside", []r2.Point{{X: 0.5, Y: 0.2}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conf := NewConfiguration(c.joints)
			test.That(t, ws.Collides(conf), test.ShouldEqual, c.expected)
			// pure function of the configuration
			test.That(t, ws.Collides(conf), test.ShouldEqual, c.expected)
		})
	}
}
