package birrt

import (
	"context"

	"go.opencensus.io/trace"

	"github.com/kestrelrobotics/birrtstar/logging"
)

// Improve implements the refinement-phase primitive (§4.6): insert a
// sample into the unified roadmap and run choose-parent + rewire against
// each of the two parent maps independently, so the roadmap accumulates
// up to two incoming edges to qnew — one favored by each root's shortest-
// path tree. This has no analogue in the teacher, which never reaches a
// merged-refinement phase; it is built by factoring Extend's
// choose-parent/rewire steps (chooseParent, rewireNear) into helpers
// shared by both call sites.
func Improve(
	ctx context.Context,
	rm Roadmap,
	collab *Collaborators,
	opts *Options,
	toRoot [2]*ParentMap,
	q Configuration,
	logger logging.Logger,
) (bool, error) {
	ctx, span := trace.StartSpan(ctx, "improve")
	defer span.End()

	component := rm.Component(toRoot[0].Root())

	near, dist, ok := rm.Nearest(q, collab.Distance, component, false)
	if !ok || dist < opts.NearCoincidentEpsilon {
		return false, nil
	}

	p, ok := BuildPath(ctx, collab, near.Config(), q, opts.resolvedMaxStepLength(collab), true)
	if !ok || p == nil || p.Length() < opts.MinPathLength {
		return false, nil
	}
	q = p.End()

	n := rm.NumNodes()
	radius := ballRadius(opts.Gamma, n, collab.Frame.DoF(), opts.resolvedMaxStepLength(collab))
	nearNodes := rm.WithinBall(q, collab.Distance, radius, component, false)

	candidates := buildCandidates(ctx, collab, q, nearNodes, near, p)

	qnew := rm.AddNode(q)

	for k := 0; k < 2; k++ {
		pm := toRoot[k]
		chosenFrom, chosenPath, costQ, err := chooseParent(pm, near.ID(), p, candidates, collab, opts, logger)
		if err != nil {
			return false, err
		}

		forward := rm.AddEdge(chosenFrom, qnew.ID(), chosenPath)
		rm.AddEdge(qnew.ID(), chosenFrom, chosenPath.Reverse())
		if err := pm.SetParent(qnew.ID(), forward); err != nil {
			return false, err
		}

		if err := rewireNear(rm, pm, qnew.ID(), chosenFrom, costQ, candidates, collab, opts, logger); err != nil {
			return false, err
		}
	}

	return true, nil
}
