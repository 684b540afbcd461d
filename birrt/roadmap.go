package birrt

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
)

// Roadmap is the collaborator storing the planner's nodes and directed
// edges. The core package depends only on this interface; memRoadmap
// below is the default in-memory implementation used when no other
// roadmap is supplied.
type Roadmap interface {
	// AddNode allocates and stores a new node carrying config.
	AddNode(config Configuration) *Node

	// AddEdge stores a directed edge from -> to carrying path, merging
	// the connected components of from and to if they were separate.
	AddEdge(from, to NodeID, path Path) *Edge

	// Node looks up a node by ID.
	Node(id NodeID) (*Node, bool)

	// Nodes returns every node currently stored, in insertion order.
	Nodes() []*Node

	// NumNodes returns the current node count.
	NumNodes() int

	// OutEdges returns the directed edges leaving id.
	OutEdges(id NodeID) []*Edge

	// Component returns the connected-component identifier of id.
	Component(id NodeID) ComponentID

	// Components returns every distinct connected-component identifier
	// currently present in the roadmap.
	Components() []ComponentID

	// Nearest returns the closest node to q under dist. If restrict is
	// true, the search is limited to nodes in component c.
	Nearest(q Configuration, dist DistanceFunc, c ComponentID, restrict bool) (*Node, float64, bool)

	// WithinBall returns every node within radius of q under dist. If
	// restrict is true, the search is limited to nodes in component c.
	WithinBall(q Configuration, dist DistanceFunc, radius float64, c ComponentID, restrict bool) []*Node
}

// memRoadmap is the default, in-memory Roadmap implementation: a flat node
/// out-edge store plus a union-find forest for component tracking and
// linear-scan nearest/ball queries. Nearest-neighbor and ball queries are
// O(n) by design — replacing them with a spatial index is exactly the
// kind of roadmap-storage concern §1 scopes out of the core; callers with
// larger roadmaps are expected to supply their own Roadmap.
type memRoadmap struct {
	mu       sync.RWMutex
	counter  atomic.Int64
	nodes    map[NodeID]*Node
	order    []NodeID
	outEdges map[NodeID][]*Edge
	uf       *unionFind
}

// NewRoadmap constructs an empty in-memory Roadmap.
func NewRoadmap() Roadmap {
	return &memRoadmap{
		nodes:    make(map[NodeID]*Node),
		outEdges: make(map[NodeID][]*Edge),
		uf:       newUnionFind(),
	}
}

func (r *memRoadmap) AddNode(config Configuration) *Node {
	id := NodeID(r.counter.Add(1))
	n := &Node{id: id, config: config}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[id] = n
	r.order = append(r.order, id)
	r.uf.makeSet(id)
	return n
}

func (r *memRoadmap) AddEdge(from, to NodeID, path Path) *Edge {
	e := &Edge{From: from, To: to, Path: path}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.outEdges[from] = append(r.outEdges[from], e)
	r.uf.union(from, to)
	return e
}

func (r *memRoadmap) Node(id NodeID) (*Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	return n, ok
}

func (r *memRoadmap) Nodes() []*Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.nodes[id])
	}
	return out
}

func (r *memRoadmap) NumNodes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *memRoadmap) OutEdges(id NodeID) []*Edge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.outEdges[id]
}

func (r *memRoadmap) Component(id NodeID) ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ComponentID(r.uf.find(id))
}

func (r *memRoadmap) Components() []ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[ComponentID]bool)
	out := make([]ComponentID, 0)
	for _, id := range r.order {
		c := ComponentID(r.uf.find(id))
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (r *memRoadmap) candidates(c ComponentID, restrict bool) []*Node {
	all := r.Nodes()
	if !restrict {
		return all
	}
	return lo.Filter(all, func(n *Node, _ int) bool {
		return r.Component(n.ID()) == c
	})
}

func (r *memRoadmap) Nearest(q Configuration, dist DistanceFunc, c ComponentID, restrict bool) (*Node, float64, bool) {
	best := math.Inf(1)
	var bestNode *Node
	for _, n := range r.candidates(c, restrict) {
		d := dist(n.Config(), q)
		if d < best {
			best = d
			bestNode = n
		}
	}
	if bestNode == nil {
		return nil, 0, false
	}
	return bestNode, best, true
}

func (r *memRoadmap) WithinBall(q Configuration, dist DistanceFunc, radius float64, c ComponentID, restrict bool) []*Node {
	return lo.Filter(r.candidates(c, restrict), func(n *Node, _ int) bool {
		return dist(n.Config(), q) <= radius
	})
}
