package birrt

import (
	"testing"

	"go.viam.com/test"
)

type fakePath struct {
	length float64
}

func (p *fakePath) Length() float64                { return p.length }
func (p *fakePath) Reverse() Path                   { return &fakePath{length: p.length} }
func (p *fakePath) TimeRange() (float64, float64)   { return 0, p.length }
func (p *fakePath) Extract(t0, t1 float64) Path      { return &fakePath{length: t1 - t0} }
func (p *fakePath) Start() Configuration            { return "start" }
func (p *fakePath) End() Configuration              { return "end" }

func TestParentMapRootHasNoParent(t *testing.T) {
	pm := NewParentMap(1)
	edge, ok := pm.ParentEdge(1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, edge, test.ShouldBeNil)
	cost, err := pm.CostToRoot(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, 0.0)
}

func TestParentMapSetParentAccumulatesCost(t *testing.T) {
	pm := NewParentMap(1)
	test.That(t, pm.SetParent(2, &Edge{From: 1, To: 2, Path: &fakePath{length: 3}}), test.ShouldBeNil)
	test.That(t, pm.SetParent(3, &Edge{From: 2, To: 3, Path: &fakePath{length: 4}}), test.ShouldBeNil)

	cost, err := pm.CostToRoot(3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, 7.0)
}

func TestParentMapInconsistentEdgeTarget(t *testing.T) {
	pm := NewParentMap(1)
	err := pm.SetParent(2, &Edge{From: 1, To: 99, Path: &fakePath{length: 1}})
	test.That(t, err, test.ShouldEqual, ErrParentMapInconsistent)
}

func TestParentMapInconsistentMissingFrom(t *testing.T) {
	pm := NewParentMap(1)
	err := pm.SetParent(2, &Edge{From: 42, To: 2, Path: &fakePath{length: 1}})
	test.That(t, err, test.ShouldEqual, ErrParentMapInconsistent)
}

func TestParentMapOrphanNode(t *testing.T) {
	pm := NewParentMap(1)
	_, err := pm.CostToRoot(55)
	test.That(t, err, test.ShouldEqual, ErrOrphanNode)
}

func TestParentMapRewireLowersCost(t *testing.T) {
	pm := NewParentMap(1)
	test.That(t, pm.SetParent(2, &Edge{From: 1, To: 2, Path: &fakePath{length: 10}}), test.ShouldBeNil)
	test.That(t, pm.SetParent(3, &Edge{From: 2, To: 3, Path: &fakePath{length: 10}}), test.ShouldBeNil)

	before, _ := pm.CostToRoot(3)
	test.That(t, before, test.ShouldEqual, 20.0)

	// rewire 3 directly off the root with a cheaper edge
	test.That(t, pm.SetParent(3, &Edge{From: 1, To: 3, Path: &fakePath{length: 5}}), test.ShouldBeNil)
	after, _ := pm.CostToRoot(3)
	test.That(t, after, test.ShouldEqual, 5.0)
}
