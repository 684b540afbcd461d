package birrt

import (
	"context"

	"github.com/google/uuid"
	"go.opencensus.io/trace"

	"github.com/kestrelrobotics/birrtstar/logging"
)

// Planner owns the two roots, the two parent maps, and the phase (derived
// from the roadmap's connected-component count), dispatching each OneStep
// call to Extend/Connect during growth or Improve during refinement
// (§4.7), grounded on rrtStarConnect.go's rrtStarConnectMotionPlanner
// constructor shape and planRunner's sample/extend/connect/swap loop.
type Planner struct {
	Roadmap Roadmap
	Collab  *Collaborators
	Opts    *Options

	roots   [2]NodeID
	toRoot  [2]*ParentMap
	started bool

	initialStart NodeID
	initialGoal  NodeID

	logger    logging.Logger
	iteration int
}

// New constructs a Planner over rm using collab as its collaborators and
// opts to configure step length, gamma, and the epsilon tunables. If opts
// is nil, NewOptions() defaults are used. Each Planner mints a run
// identifier and attaches it to its logger for correlation across a long
// RunUntil call, the same role uuid plays for resource identity
// throughout the wider teacher repository.
func New(rm Roadmap, collab *Collaborators, opts *Options, logger logging.Logger) *Planner {
	if opts == nil {
		opts = NewOptions()
	}
	if logger == nil {
		logger = logging.NewLogger("birrt")
	}
	runID := uuid.New()
	return &Planner{
		Roadmap: rm,
		Collab:  collab,
		Opts:    opts,
		logger:  logger.With("run_id", runID.String()),
	}
}

// StartSolve wires the planner to a single start node and a single goal
// node already present in rm. Fails with ErrGoalAmbiguous if the roadmap
// does not contain exactly one candidate goal node among goalCandidates
// (the surrounding system's notion of "is this a goal" is outside the
// core's scope, so the caller supplies the candidate set directly).
func (p *Planner) StartSolve(ctx context.Context, startNode, goalNode NodeID, goalCandidates []NodeID) error {
	_, span := trace.StartSpan(ctx, "start_solve")
	defer span.End()

	if len(goalCandidates) != 1 {
		return ErrGoalAmbiguous
	}

	p.roots[0] = startNode
	p.roots[1] = goalNode
	p.toRoot[0] = NewParentMap(startNode)
	p.toRoot[1] = NewParentMap(goalNode)
	p.initialStart = startNode
	p.initialGoal = goalNode
	p.started = true
	p.iteration = 0

	p.logger.Debugw("solve started", "start", startNode, "goal", goalNode,
		"max_step_length", p.Opts.resolvedMaxStepLength(p.Collab), "gamma", p.Opts.Gamma)
	return nil
}

// Phase reports the planner's current phase, derived from the roadmap's
// connected-component count (§3). Returns ErrPhaseInvariant if that count
// is neither 1 nor 2.
func (p *Planner) Phase() (string, error) {
	switch len(p.Roadmap.Components()) {
	case 2:
		return "growth", nil
	case 1:
		return "refinement", nil
	default:
		return "", ErrPhaseInvariant
	}
}

// OneStep advances the planner by a single sample, per §4.7. During
// growth it extends roots[0]'s tree and, on success, either observes a
// phase transition or connects roots[1]'s tree toward the same sample,
// then swaps the grow/connect root slots. During refinement it rebuilds
// both parent maps (once, on the first refinement step after merge) and
// calls Improve.
func (p *Planner) OneStep(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "one_step")
	defer span.End()

	if !p.started {
		return ErrPhaseInvariant
	}

	q := p.Collab.Sampler.Shoot()
	p.iteration++

	switch components := len(p.Roadmap.Components()); components {
	case 2:
		extended, err := Extend(ctx, p.Roadmap, p.Collab, p.Opts, p.roots[0], p.toRoot[0], &q, p.logger)
		if err != nil {
			return err
		}
		if extended && len(p.Roadmap.Components()) != 1 {
			// The two trees have not merged yet; try to bridge them by
			// growing the other tree toward the same sample (§4.7).
			if _, err := Connect(ctx, p.Roadmap, p.Collab, p.Opts, p.roots[1], p.toRoot[1], q, p.logger); err != nil {
				return err
			}
		}
		// Swap which tree is "next to grow". The source planner does this
		// unconditionally even when the swap's growth iteration was the one
		// that merged the trees, which is a no-op since the next OneStep
		// call observes the refinement phase anyway; kept for fidelity
		// (§9 Open Question).
		p.roots[0], p.roots[1] = p.roots[1], p.roots[0]
		p.toRoot[0], p.toRoot[1] = p.toRoot[1], p.toRoot[0]

	case 1:
		if !p.toRoot[1].Has(p.roots[0]) {
			fresh0, err := ComputeParentMap(ctx, p.Roadmap, p.toRoot[0].Root())
			if err != nil {
				return err
			}
			fresh1, err := ComputeParentMap(ctx, p.Roadmap, p.toRoot[1].Root())
			if err != nil {
				return err
			}
			p.toRoot[0], p.toRoot[1] = fresh0, fresh1
			p.logger.Debugw("rebuilt parent maps at phase transition",
				"nodes", p.Roadmap.NumNodes(), "map0_len", p.toRoot[0].Len(), "map1_len", p.toRoot[1].Len())
		}
		if p.toRoot[0].Len() != p.Roadmap.NumNodes() || p.toRoot[1].Len() != p.Roadmap.NumNodes() {
			return ErrPhaseInvariant
		}
		if _, err := Improve(ctx, p.Roadmap, p.Collab, p.Opts, p.toRoot, q, p.logger); err != nil {
			return err
		}

	default:
		return ErrPhaseInvariant
	}

	if p.shouldLogProgress() {
		p.logger.Debugw("one_step", "iteration", p.iteration, "nodes", p.Roadmap.NumNodes())
	}
	return nil
}

// shouldLogProgress reports whether the current iteration falls on a
// LoggingInterval boundary, mirroring rrtStarConnect.go's planRunner
// computing logIteration := PlanIter * LoggingInterval and logging every
// logIteration-th sample.
func (p *Planner) shouldLogProgress() bool {
	if p.Opts.LoggingInterval <= 0 {
		return false
	}
	every := int(1.0 / p.Opts.LoggingInterval)
	if every <= 0 {
		every = 1
	}
	return p.iteration%every == 0
}

// RunUntil calls OneStep repeatedly until stop returns true or an error
// occurs. It is a thin convenience loop, not part of the core state
// machine itself; OneStep alone is sufficient for callers that want to
// interleave their own scheduling (§5's "driver is re-entered
// externally").
func (p *Planner) RunUntil(ctx context.Context, stop func(iteration int) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if stop(p.iteration) {
			return nil
		}
		if err := p.OneStep(ctx); err != nil {
			return err
		}
	}
}

// CostToGoal returns the best known cost from the start root to the goal
// root, valid only once the roadmap has merged into one connected
// component (i.e. in refinement phase). OneStep swaps roots[0]/roots[1]
// (and toRoot[0]/toRoot[1] alongside them) every growth iteration, but
// each ParentMap keeps its own fixed Root() regardless of which slot it
// currently occupies, so the goal-rooted map is found by identity rather
// than by slot index.
func (p *Planner) CostToGoal() (float64, error) {
	phase, err := p.Phase()
	if err != nil {
		return 0, err
	}
	if phase != "refinement" {
		return 0, ErrPhaseInvariant
	}
	for _, pm := range p.toRoot {
		if pm.Root() == p.initialGoal {
			return pm.CostToRoot(p.initialStart)
		}
	}
	return 0, ErrPhaseInvariant
}
