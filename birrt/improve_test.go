package birrt

import (
	"math"
	"testing"

	"go.viam.com/test"
)

type acceptAllValidator struct{}

func (acceptAllValidator) Validate(p Path) (Path, ValidationReport) {
	return p, ValidationReport{Valid: true}
}

// TestRewireNearAppliesScenarioC reproduces Scenario C: a parent map preloaded
// with root -> a -> b at total cost 2 (length 1 each), where a direct
// diagonal root -> qnew -> b route of length sqrt(2) is buildable and
// valid. rewireNear must re-parent b onto qnew, dropping its cost to root
// from 2 to sqrt(2).
func TestRewireNearAppliesScenarioC(t *testing.T) {
	rm := NewRoadmap()
	root := rm.AddNode("root")
	a := rm.AddNode("a")
	b := rm.AddNode("b")
	qnew := rm.AddNode("qnew")

	pm := NewParentMap(root.ID())
	test.That(t, pm.SetParent(a.ID(), &Edge{From: root.ID(), To: a.ID(), Path: &fakePath{length: 1}}), test.ShouldBeNil)
	test.That(t, pm.SetParent(b.ID(), &Edge{From: a.ID(), To: b.ID(), Path: &fakePath{length: 1}}), test.ShouldBeNil)

	before, err := pm.CostToRoot(b.ID())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, before, test.ShouldEqual, 2.0)

	diag := math.Sqrt2
	test.That(t, pm.SetParent(qnew.ID(), &Edge{From: root.ID(), To: qnew.ID(), Path: &fakePath{length: diag}}), test.ShouldBeNil)

	collab := &Collaborators{Validator: acceptAllValidator{}}
	opts := NewOptions()
	candidates := map[NodeID]*rewireCandidate{
		b.ID(): {node: b, path: &fakePath{length: 0}},
	}

	err = rewireNear(rm, pm, qnew.ID(), root.ID(), diag, candidates, collab, opts, nil)
	test.That(t, err, test.ShouldBeNil)

	after, err := pm.CostToRoot(b.ID())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, after, test.ShouldAlmostEqual, math.Sqrt2, 1e-9)
}
