package birrt

import "github.com/pkg/errors"

// Sentinel errors surfaced to the caller, never swallowed. The last three
// indicate a logic bug or an invariant breach and are fatal; callers should
// treat them as unrecoverable for the affected Planner.
var (
	// ErrGoalAmbiguous is returned by StartSolve when the roadmap does
	// not contain exactly one candidate goal node.
	ErrGoalAmbiguous = errors.New("birrt: roadmap does not have exactly one goal node")

	// ErrParentMapInconsistent is returned by ParentMap.SetParent when
	// the supplied edge's To does not match the node being set, or its
	// From is not already present in the map.
	ErrParentMapInconsistent = errors.New("birrt: parent map inconsistency")

	// ErrOrphanNode is returned by ParentMap.CostToRoot when the parent
	// chain breaks before reaching a rooted node. Invariants guarantee
	// this never happens; seeing it indicates a bug elsewhere.
	ErrOrphanNode = errors.New("birrt: orphan node in parent chain")

	// ErrPhaseInvariant is returned by OneStep when the roadmap's
	// connected-component count is neither 1 nor 2, indicating external
	// mutation of the roadmap while the planner was running.
	ErrPhaseInvariant = errors.New("birrt: roadmap connected-component count is neither 1 nor 2")
)
