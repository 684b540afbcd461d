package birrt

import (
	"context"
	"testing"

	"go.viam.com/test"
)

type stubSteer struct {
	path Path
	ok   bool
}

func (s stubSteer) steer(from, to Configuration) (Path, bool) { return s.path, s.ok }

type stubProjector struct {
	path Path
	ok   bool
}

func (s stubProjector) Apply(p Path) (Path, bool) { return s.path, s.ok }

type stubValidator struct {
	prefix Path
}

func (s stubValidator) Validate(p Path) (Path, ValidationReport) {
	return s.prefix, ValidationReport{Valid: s.prefix != nil}
}

func TestBuildPathDeclinesWhenSteeringDeclines(t *testing.T) {
	collab := &Collaborators{Steer: stubSteer{ok: false}.steer, Validator: stubValidator{}}
	p, ok := BuildPath(context.Background(), collab, "a", "b", -1, false)
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, p, test.ShouldBeNil)
}

func TestBuildPathTruncatesOverMaxLength(t *testing.T) {
	full := &fakePath{length: 10}
	collab := &Collaborators{Steer: stubSteer{path: full, ok: true}.steer, Validator: stubValidator{prefix: full}}
	p, ok := BuildPath(context.Background(), collab, "a", "b", 3, false)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, p.Length(), test.ShouldEqual, 3.0)
}

func TestBuildPathSkipsValidationWhenNotRequested(t *testing.T) {
	full := &fakePath{length: 2}
	collab := &Collaborators{Steer: stubSteer{path: full, ok: true}.steer, Validator: stubValidator{prefix: nil}}
	p, ok := BuildPath(context.Background(), collab, "a", "b", -1, false)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, p.Length(), test.ShouldEqual, 2.0)
}

func TestBuildPathReturnsValidatedPrefix(t *testing.T) {
	full := &fakePath{length: 5}
	prefix := &fakePath{length: 2}
	collab := &Collaborators{Steer: stubSteer{path: full, ok: true}.steer, Validator: stubValidator{prefix: prefix}}
	p, ok := BuildPath(context.Background(), collab, "a", "b", -1, true)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, p.Length(), test.ShouldEqual, 2.0)
}

func TestBuildPathDeclinesWhenProjectorDeclines(t *testing.T) {
	full := &fakePath{length: 5}
	collab := &Collaborators{
		Steer:     stubSteer{path: full, ok: true}.steer,
		Projector: stubProjector{ok: false},
		Validator: stubValidator{},
	}
	p, ok := BuildPath(context.Background(), collab, "a", "b", -1, false)
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, p, test.ShouldBeNil)
}
