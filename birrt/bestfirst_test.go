package birrt

import (
	"context"
	"testing"

	"go.viam.com/test"
)

func TestComputeParentMapPicksShortestPath(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode("a")
	b := rm.AddNode("b")
	c := rm.AddNode("c")
	d := rm.AddNode("d")

	// a -> b -> d costs 1 + 1 = 2; a -> c -> d costs 1 + 5 = 6.
	rm.AddEdge(a.ID(), b.ID(), &fakePath{length: 1})
	rm.AddEdge(a.ID(), c.ID(), &fakePath{length: 1})
	rm.AddEdge(b.ID(), d.ID(), &fakePath{length: 1})
	rm.AddEdge(c.ID(), d.ID(), &fakePath{length: 5})

	pm, err := ComputeParentMap(context.Background(), rm, a.ID())
	test.That(t, err, test.ShouldBeNil)

	cost, err := pm.CostToRoot(d.ID())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, 2.0)

	edge, ok := pm.ParentEdge(d.ID())
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, edge.From, test.ShouldEqual, b.ID())
}

func TestComputeParentMapCoversOnlyReachableNodes(t *testing.T) {
	rm := NewRoadmap()
	a := rm.AddNode("a")
	rm.AddNode("isolated")

	pm, err := ComputeParentMap(context.Background(), rm, a.ID())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pm.Len(), test.ShouldEqual, 1)
}
