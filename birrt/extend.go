package birrt

import (
	"context"
	"math"

	"go.opencensus.io/trace"
	"go.uber.org/multierr"

	"github.com/samber/lo"

	"github.com/kestrelrobotics/birrtstar/logging"
)

// rewireCandidate records a near-neighbor considered during choose-parent
// and rewiring, with lazy (tri-state) validation: a candidate's path is
// only validated once it would actually improve cost (§9 "Deferred
// validation"). The same candidate set is reused across both parent-map
// passes of Improve, so a path validated for toRoot[0] is not
// re-validated for toRoot[1].
type rewireCandidate struct {
	node      *Node
	path      Path // path from node to qnew; nil if steering declined
	validated bool // true once Validate has been run on path
	valid     bool // meaningful only when validated
}

// ballRadius computes the RRT* near-neighbor radius min(gamma *
// (ln N / N)^(1/d), maxStepLength), per §4.4 step 3 / Testable
// Property 6. N is the pre-call roadmap node count and is assumed >= 2
// (a started planner's roadmap already holds its start and goal nodes, so
// N == 1 never occurs on a live planner); the guard below only protects
// against the formula's ln(1)/1 == 0 and ln(0) singularities should this
// ever be called standalone with a smaller N.
func ballRadius(gamma float64, n int, dof int, maxStepLength float64) float64 {
	if n <= 1 {
		return maxStepLength
	}
	r := gamma * math.Pow(math.Log(float64(n))/float64(n), 1.0/float64(dof))
	if r > maxStepLength {
		return maxStepLength
	}
	return r
}

// resolvedMaxStepLength returns opts.MaxStepLength if positive, else
// sqrt(DoF) per §4.7's StartSolve default-resolution rule.
func (o *Options) resolvedMaxStepLength(collab *Collaborators) float64 {
	if o.MaxStepLength > 0 {
		return o.MaxStepLength
	}
	return math.Sqrt(float64(collab.Frame.DoF()))
}

// buildCandidates constructs an unvalidated candidate path from every
// node in nearNodes (other than near) toward q. Steering failures leave a
// candidate with a nil path, which chooseParent and rewireNear both skip.
// near itself is recorded as a pre-validated baseline candidate carrying
// nearPath (the already-validated path used to reach q in the first
// place), per §4.4 step 4 ("If c == near, record (validated=true, p) and
// continue"). This is what lets rewireNear (step 6) re-parent near
// through qnew when chooseParent ends up favoring a different parent.
func buildCandidates(ctx context.Context, collab *Collaborators, q Configuration, nearNodes []*Node, near *Node, nearPath Path) map[NodeID]*rewireCandidate {
	out := make(map[NodeID]*rewireCandidate, len(nearNodes)+1)
	for _, c := range lo.Filter(nearNodes, func(c *Node, _ int) bool { return c.ID() != near.ID() }) {
		cand := &rewireCandidate{node: c}
		if pc, ok := BuildPath(ctx, collab, c.Config(), q, -1, false); ok && pc != nil {
			cand.path = pc
		}
		out[c.ID()] = cand
	}
	out[near.ID()] = &rewireCandidate{node: near, path: nearPath, validated: true, valid: true}
	return out
}

// chooseParent runs §4.4 step 4 against a single parent map: starting
// from the baseline (baseID, basePath) candidate, consider every
// candidate in turn, lazily validating any whose path would improve on
// the current best cost. Mutates each considered candidate's
// validated/valid/path fields in place (memoizing validation across
// repeated calls over the same candidate set, as Improve does per root).
func chooseParent(
	pm *ParentMap,
	baseID NodeID,
	basePath Path,
	candidates map[NodeID]*rewireCandidate,
	collab *Collaborators,
	opts *Options,
	logger logging.Logger,
) (chosenFrom NodeID, chosenPath Path, costQ float64, err error) {
	baseCost, err := pm.CostToRoot(baseID)
	if err != nil {
		return 0, nil, 0, err
	}
	costQ = baseCost + basePath.Length()
	chosenFrom = baseID
	chosenPath = basePath

	var failures error
	for id, cand := range candidates {
		if cand.path == nil {
			continue
		}
		cCost, err := pm.CostToRoot(id)
		if err != nil {
			return 0, nil, 0, err
		}
		if cCost+cand.path.Length() >= costQ {
			continue
		}
		if !cand.validated {
			validPrefix, report := collab.Validator.Validate(cand.path)
			cand.validated = true
			cand.valid = validPrefix != nil && validPrefix.Length() >= cand.path.Length()-opts.MinPathLength
			if !cand.valid && report.Err != nil {
				failures = multierr.Append(failures, report.Err)
			}
		}
		if !cand.valid {
			continue
		}
		costQ = cCost + cand.path.Length()
		chosenFrom = id
		chosenPath = cand.path
	}
	if failures != nil && logger != nil {
		logger.Warnw("choose-parent candidate failed validation", "root", pm.Root(), "err", failures)
	}
	return chosenFrom, chosenPath, costQ, nil
}

// rewireNear runs §4.4 step 6 / §4.6 step 5's rewire pass against a
// single parent map: any candidate whose path through qnew would improve
// its cost gets validated (if not already) and, if valid, re-parented.
func rewireNear(
	rm Roadmap,
	pm *ParentMap,
	qnewID NodeID,
	chosenFrom NodeID,
	costQ float64,
	candidates map[NodeID]*rewireCandidate,
	collab *Collaborators,
	opts *Options,
	logger logging.Logger,
) error {
	var failures error
	for id, cand := range candidates {
		if id == chosenFrom || cand.path == nil {
			continue
		}
		newCost := costQ + cand.path.Length()
		curCost, err := pm.CostToRoot(id)
		if err != nil {
			return err
		}
		if newCost >= curCost {
			continue
		}
		if !cand.validated {
			validPrefix, report := collab.Validator.Validate(cand.path)
			cand.validated = true
			cand.valid = validPrefix != nil && validPrefix.Length() >= cand.path.Length()-opts.MinPathLength
			if !cand.valid && report.Err != nil {
				failures = multierr.Append(failures, report.Err)
			}
		}
		if !cand.valid {
			continue
		}
		rm.AddEdge(id, qnewID, cand.path)
		rev := rm.AddEdge(qnewID, id, cand.path.Reverse())
		if err := pm.SetParent(id, rev); err != nil {
			return err
		}
	}
	if failures != nil && logger != nil {
		logger.Warnw("rewire candidate failed validation", "root", pm.Root(), "err", failures)
	}
	return nil
}

// bridgeIfCoincident replaces the teacher's external "shared node pair"
// bookkeeping (rrtStarConnect.go's `shared []*nodePair`, which records
// that two distinct per-tree nodes happen to share a configuration) with
// a literal roadmap edge: when qnew's configuration lands within
// NearCoincidentEpsilon of a node already in the other tree's component,
// a short connecting edge is inserted so the roadmap's own
// component-merge bookkeeping (§3's "automatic component merging on edge
// insertion") becomes the single source of truth for "have the trees
// met", rather than a side list the driver must separately consult.
func bridgeIfCoincident(ctx context.Context, rm Roadmap, collab *Collaborators, opts *Options, qnew *Node, ownComponent ComponentID) error {
	components := rm.Components()
	if len(components) != 2 {
		return nil
	}
	var otherComponent ComponentID
	found := false
	for _, c := range components {
		if c != ownComponent {
			otherComponent = c
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	other, dist, ok := rm.Nearest(qnew.Config(), collab.Distance, otherComponent, true)
	if !ok || dist >= opts.NearCoincidentEpsilon {
		return nil
	}

	bridge, ok := BuildPath(ctx, collab, qnew.Config(), other.Config(), -1, true)
	if !ok || bridge == nil {
		return nil
	}
	rm.AddEdge(qnew.ID(), other.ID(), bridge)
	rm.AddEdge(other.ID(), qnew.ID(), bridge.Reverse())
	return nil
}

// Extend implements the choose-parent + rewire primitive (§4.4): grow the
// tree rooted at targetRoot by one sample. q is overwritten in place with
// the actual configuration reached (p.End()), matching the source
// planner's in/out parameter. Returns false for any locally recovered
// condition (§7); errors are reserved for contract violations.
func Extend(
	ctx context.Context,
	rm Roadmap,
	collab *Collaborators,
	opts *Options,
	targetRoot NodeID,
	pm *ParentMap,
	q *Configuration,
	logger logging.Logger,
) (bool, error) {
	ctx, span := trace.StartSpan(ctx, "extend")
	defer span.End()

	targetComponent := rm.Component(targetRoot)

	near, dist, ok := rm.Nearest(*q, collab.Distance, targetComponent, true)
	if !ok || dist < opts.NearCoincidentEpsilon {
		return false, nil
	}

	p, ok := BuildPath(ctx, collab, near.Config(), *q, opts.resolvedMaxStepLength(collab), true)
	if !ok || p == nil || p.Length() < opts.MinPathLength {
		return false, nil
	}
	*q = p.End()

	n := rm.NumNodes()
	radius := ballRadius(opts.Gamma, n, collab.Frame.DoF(), opts.resolvedMaxStepLength(collab))
	nearNodes := rm.WithinBall(*q, collab.Distance, radius, targetComponent, true)

	candidates := buildCandidates(ctx, collab, *q, nearNodes, near, p)
	chosenFrom, chosenPath, costQ, err := chooseParent(pm, near.ID(), p, candidates, collab, opts, logger)
	if err != nil {
		return false, err
	}

	qnew := rm.AddNode(*q)
	forward := rm.AddEdge(chosenFrom, qnew.ID(), chosenPath)
	rm.AddEdge(qnew.ID(), chosenFrom, chosenPath.Reverse())
	if err := pm.SetParent(qnew.ID(), forward); err != nil {
		return false, err
	}

	if err := rewireNear(rm, pm, qnew.ID(), chosenFrom, costQ, candidates, collab, opts, logger); err != nil {
		return false, err
	}

	if err := bridgeIfCoincident(ctx, rm, collab, opts, qnew, targetComponent); err != nil {
		return false, err
	}

	return true, nil
}
