package birrt

// ParentMap is a shortest-path tree over the roadmap, represented as a
// flat node -> incoming-edge mapping rather than back-pointers on the
// node itself, so a single node can sit in both of the planner's parent
// maps simultaneously without aliasing hazards (§9 "Cyclic parent
// graphs" / "Shared node ownership").
//
// Invariants (§3):
//  1. Exactly one node has a nil parent edge: the map's root.
//  2. For every other mapped node n, edge.To == n and edge.From is also
//     mapped.
//  3. Following parents from any mapped node reaches the root in
//     finitely many steps.
type ParentMap struct {
	root NodeID
	// parents[n] == nil for the root; otherwise the incoming edge on n's
	// shortest known path to root.
	parents map[NodeID]*Edge
	// hasEntry tracks map membership independent of the *Edge being nil,
	// since the root's own entry is legitimately nil.
	hasEntry map[NodeID]bool
}

// NewParentMap returns a ParentMap rooted at root, with root itself
// already mapped to no parent.
func NewParentMap(root NodeID) *ParentMap {
	pm := &ParentMap{
		root:     root,
		parents:  make(map[NodeID]*Edge),
		hasEntry: make(map[NodeID]bool),
	}
	pm.parents[root] = nil
	pm.hasEntry[root] = true
	return pm
}

// Root returns the node this parent map is rooted at.
func (pm *ParentMap) Root() NodeID { return pm.root }

// Len returns the number of nodes currently mapped.
func (pm *ParentMap) Len() int { return len(pm.hasEntry) }

// Has reports whether n has an entry in the map (root or otherwise).
func (pm *ParentMap) Has(n NodeID) bool { return pm.hasEntry[n] }

// ParentEdge returns n's incoming edge, or nil if n is the root. The
// second return value is false if n has no entry at all.
func (pm *ParentMap) ParentEdge(n NodeID) (*Edge, bool) {
	if !pm.hasEntry[n] {
		return nil, false
	}
	return pm.parents[n], true
}

// SetParent establishes n's parent edge. When edge is non-nil,
// edge.To must equal n and edge.From must already be mapped; violating
// either fails with ErrParentMapInconsistent. Re-pointing an
// already-mapped node (rewiring) is allowed and is the only way a
// parent map entry ever changes after creation.
func (pm *ParentMap) SetParent(n NodeID, edge *Edge) error {
	if edge != nil {
		if edge.To != n {
			return ErrParentMapInconsistent
		}
		if !pm.hasEntry[edge.From] {
			return ErrParentMapInconsistent
		}
	}
	pm.parents[n] = edge
	pm.hasEntry[n] = true
	return nil
}

// CostToRoot sums edge.Path.Length() along the parent chain from n back
// to the map's root. Cost is computed on demand by walking parents
// rather than cached, so rewiring (SetParent) stays O(1) at the price of
// an O(depth) cost query, per §4.1.
func (pm *ParentMap) CostToRoot(n NodeID) (float64, error) {
	cost := 0.0
	cur := n
	for {
		if !pm.hasEntry[cur] {
			return 0, ErrOrphanNode
		}
		edge := pm.parents[cur]
		if edge == nil {
			// cur is rooted (== pm.root, by invariant 1).
			return cost, nil
		}
		cost += edge.Path.Length()
		cur = edge.From
	}
}

// Nodes returns every node currently mapped, in no particular order.
func (pm *ParentMap) Nodes() []NodeID {
	out := make([]NodeID, 0, len(pm.hasEntry))
	for n := range pm.hasEntry {
		out = append(out, n)
	}
	return out
}
