package birrt

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func dist1D(a, b Configuration) float64 {
	return math.Abs(a.(float64) - b.(float64))
}

func TestRoadmapAddEdgeMergesComponents(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode(0.0)
	b := rm.AddNode(1.0)

	test.That(t, len(rm.Components()), test.ShouldEqual, 2)
	test.That(t, rm.Component(a.ID()), test.ShouldNotEqual, rm.Component(b.ID()))

	rm.AddEdge(a.ID(), b.ID(), &fakePath{length: 1})

	test.That(t, len(rm.Components()), test.ShouldEqual, 1)
	test.That(t, rm.Component(a.ID()), test.ShouldEqual, rm.Component(b.ID()))
}

func TestRoadmapNearestRestrictedByComponent(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode(0.0)
	b := rm.AddNode(10.0)
	rm.AddNode(0.5) // isolated, closer to 0 than b, but its own component

	near, d, ok := rm.Nearest(0.0, dist1D, rm.Component(a.ID()), true)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, near.ID(), test.ShouldEqual, a.ID())
	test.That(t, d, test.ShouldEqual, 0.0)
	_ = b
}

func TestRoadmapWithinBall(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode(0.0)
	rm.AddNode(1.0)
	rm.AddNode(5.0)

	within := rm.WithinBall(0.0, dist1D, 2.0, rm.Component(a.ID()), false)
	test.That(t, len(within), test.ShouldEqual, 2)
}

func TestRoadmapOutEdges(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode(0.0)
	b := rm.AddNode(1.0)
	rm.AddEdge(a.ID(), b.ID(), &fakePath{length: 1})

	out := rm.OutEdges(a.ID())
	test.That(t, len(out), test.ShouldEqual, 1)
	test.That(t, out[0].To, test.ShouldEqual, b.ID())
}
